package schema

// AnySchema always accepts. See spec §3.2.
type AnySchema struct{}

func (AnySchema) Kind() Kind { return KindAny }
func (AnySchema) isSchema()  {}

// Any constructs the Any schema.
func Any() Schema { return AnySchema{} }

// FailSchema always rejects; used as a sentinel (e.g. Tuple length-mismatch
// padding, translator filtering of empty alternatives).
type FailSchema struct{}

func (FailSchema) Kind() Kind { return KindFail }
func (FailSchema) isSchema()  {}

// Fail constructs the Fail schema.
func Fail() Schema { return FailSchema{} }

// BooleanSchema accepts Value::Bool. Default has no effect on validation.
type BooleanSchema struct {
	Default *bool
}

func (BooleanSchema) Kind() Kind { return KindBoolean }
func (BooleanSchema) isSchema()  {}

// Boolean constructs a BooleanSchema with an optional default.
func Boolean(def *bool) Schema { return BooleanSchema{Default: def} }

// TextSchema accepts Value::Text subject to TextConstraints.
type TextSchema struct {
	Constraints TextConstraints
	Default     *string
}

func (TextSchema) Kind() Kind { return KindText }
func (TextSchema) isSchema()  {}

// Text constructs a TextSchema.
func Text(cs TextConstraints, def *string) Schema {
	return TextSchema{Constraints: cs, Default: def}
}

// GivenTextSchema is an exact literal.
type GivenTextSchema struct {
	Value string
}

func (GivenTextSchema) Kind() Kind { return KindGivenText }
func (GivenTextSchema) isSchema()  {}

// GivenText constructs an exact-literal schema.
func GivenText(v string) Schema { return GivenTextSchema{Value: v} }

// NumericSchema accepts Value::Number (or parseable Value::Text) subject to
// NumericConstraints.
type NumericSchema struct {
	Constraints NumericConstraints
	Default     *string // decimal literal, kept as text to avoid float rounding
}

func (NumericSchema) Kind() Kind { return KindNumeric }
func (NumericSchema) isSchema()  {}

// Numeric constructs a NumericSchema.
func Numeric(cs NumericConstraints, def *string) Schema {
	return NumericSchema{Constraints: cs, Default: def}
}

// BinarySchema accepts Value::Binary, or Value::Text when an encoding
// constraint is present.
type BinarySchema struct {
	Constraints BinaryConstraints
}

func (BinarySchema) Kind() Kind { return KindBinary }
func (BinarySchema) isSchema()  {}

// Binary constructs a BinarySchema.
func Binary(cs BinaryConstraints) Schema { return BinarySchema{Constraints: cs} }

// TimeSchema accepts Value::Text matching any of a sequence of
// TimeConstraint alternatives.
type TimeSchema struct {
	Constraints []TimeConstraint
}

func (TimeSchema) Kind() Kind { return KindTime }
func (TimeSchema) isSchema()  {}

// Time constructs a TimeSchema.
func Time(cs []TimeConstraint) Schema { return TimeSchema{Constraints: cs} }

// EnumSchema accepts Value::Text equal to one of Values. Non-empty in
// canonical form.
type EnumSchema struct {
	Values []string
}

func (EnumSchema) Kind() Kind { return KindEnum }
func (EnumSchema) isSchema()  {}

// Enum constructs an EnumSchema. An empty Values slice is not canonical;
// callers producing schemas programmatically (translators) should collapse
// it to Fail() before handing it to the printer (spec §9).
func Enum(values []string) Schema { return EnumSchema{Values: values} }
