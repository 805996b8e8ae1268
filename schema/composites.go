package schema

// ListOfSchema validates a homogeneous sequence against Element, subject to
// ListConstraints.
type ListOfSchema struct {
	Element     Schema
	Constraints ListConstraints
}

func (ListOfSchema) Kind() Kind { return KindListOf }
func (ListOfSchema) isSchema()  {}

// ListOf constructs a ListOfSchema.
func ListOf(element Schema, cs ListConstraints) Schema {
	return ListOfSchema{Element: element, Constraints: cs}
}

// TupleSchema validates a fixed-arity positional sequence. Length must be
// >= 2 in canonical form (spec §3.4); translators may produce shorter
// tuples transiently but must normalize before handing to the printer.
type TupleSchema struct {
	Elements []Schema
}

func (TupleSchema) Kind() Kind { return KindTuple }
func (TupleSchema) isSchema()  {}

// TupleOf constructs a TupleSchema.
func TupleOf(elements []Schema) Schema { return TupleSchema{Elements: elements} }

// AlternativesSchema is a union; the first option whose validation succeeds
// wins. Length must be >= 2 in canonical form.
type AlternativesSchema struct {
	Options []Schema
}

func (AlternativesSchema) Kind() Kind { return KindAlternatives }
func (AlternativesSchema) isSchema()  {}

// Alternatives constructs an AlternativesSchema.
func Alternatives(options []Schema) Schema { return AlternativesSchema{Options: options} }

// ObjectLabel names one Object field: either Mandatory or Optional.
type ObjectLabel struct {
	Name      string
	Mandatory bool
}

// Mandatory builds a mandatory ObjectLabel.
func Mandatory(name string) ObjectLabel { return ObjectLabel{Name: name, Mandatory: true} }

// Optional builds an optional ObjectLabel.
func Optional(name string) ObjectLabel { return ObjectLabel{Name: name, Mandatory: false} }

// ObjectField pairs a label with its schema, in declaration order.
// ObjectSchema keeps a slice (not a bare map) so that field order from
// parsing or translation survives for the printer (insertion order, spec §9).
type ObjectField struct {
	Label  ObjectLabel
	Schema Schema
}

// ObjectSchema validates a Value::Object: every mandatory field must be
// present and valid, optional fields are validated only if present, and
// extra keys are always allowed (spec §4.5).
type ObjectSchema struct {
	Fields []ObjectField
}

func (ObjectSchema) Kind() Kind { return KindObject }
func (ObjectSchema) isSchema()  {}

// ObjectOf constructs an ObjectSchema.
func ObjectOf(fields []ObjectField) Schema { return ObjectSchema{Fields: fields} }

// Field looks up a field by name, returning its ObjectField and whether it
// was found.
func (o ObjectSchema) Field(name string) (ObjectField, bool) {
	for _, f := range o.Fields {
		if f.Label.Name == name {
			return f, true
		}
	}
	return ObjectField{}, false
}

// MapSchema validates a Value::Object as a text-keyed open mapping: every
// value must satisfy ValueSchema, and any key is acceptable.
type MapSchema struct {
	ValueSchema Schema
}

func (MapSchema) Kind() Kind { return KindMap }
func (MapSchema) isSchema()  {}

// MapOf constructs a MapSchema.
func MapOf(valueSchema Schema) Schema { return MapSchema{ValueSchema: valueSchema} }
