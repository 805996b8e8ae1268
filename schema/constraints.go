package schema

import "math/big"

// BoundOp is the comparison operator carried by a Bound.
type BoundOp int

const (
	Exact BoundOp = iota
	MinInclusive
	MinExclusive
	MaxInclusive
	MaxExclusive
)

func (op BoundOp) String() string {
	switch op {
	case Exact:
		return "=="
	case MinInclusive:
		return ">="
	case MinExclusive:
		return ">"
	case MaxInclusive:
		return "<="
	case MaxExclusive:
		return "<"
	default:
		return "?"
	}
}

// Bound is one edge of a BoundedRange.
type Bound[V any] struct {
	Op    BoundOp
	Value V
}

// BoundedRange is the shared min/max envelope for every range-bearing
// constraint (text length, list size, numeric value, binary size in bytes).
type BoundedRange[V any] struct {
	Min *Bound[V]
	Max *Bound[V]
}

// Merge combines two BoundedRanges. When a side is only set on one operand,
// that side wins. When both set the same side, the first operand's side
// wins (documented asymmetry, spec §8.1 "Merge commutativity of
// BoundedRange"). Exact is canonicalized into Min with Max cleared.
func (a BoundedRange[V]) Merge(b BoundedRange[V]) BoundedRange[V] {
	out := BoundedRange[V]{Min: a.Min, Max: a.Max}
	if out.Min == nil {
		out.Min = b.Min
	}
	if out.Max == nil {
		out.Max = b.Max
	}
	if out.Min != nil && out.Min.Op == Exact {
		out.Max = nil
	}
	return out
}

// IntRange is a BoundedRange over integers (text length, list/binary size).
type IntRange = BoundedRange[int64]

// DecimalRange is a BoundedRange over arbitrary-precision decimals.
type DecimalRange = BoundedRange[*big.Rat]

// TextConstraints constrains a Text schema.
type TextConstraints struct {
	Size   *IntRange
	Regex  *string
	Format *string // glyph alphabet: # digit, X letter, @ alphanumeric, * any, other literal
}

// NumericConstraints constrains a Numeric schema.
type NumericConstraints struct {
	Value   *DecimalRange
	Integer bool
}

// BinaryEncoding names a supported text encoding for binary payloads.
type BinaryEncoding int

const (
	EncodingNone BinaryEncoding = iota
	EncodingHex
	EncodingBase64
	EncodingBase32
	EncodingBase58
	EncodingAscii85
)

func (e BinaryEncoding) String() string {
	switch e {
	case EncodingHex:
		return "hex"
	case EncodingBase64:
		return "base64"
	case EncodingBase32:
		return "base32"
	case EncodingBase58:
		return "base58"
	case EncodingAscii85:
		return "ascii85"
	default:
		return "none"
	}
}

// BinaryConstraints constrains a Binary schema. Size is always in bytes;
// "bits" is parsed as a documented alias for bytes (see DESIGN.md Open
// Questions).
type BinaryConstraints struct {
	Size     *IntRange
	Encoding BinaryEncoding
}

// TimeConstraint is either a named format or a custom pattern.
type TimeConstraint struct {
	Named   string // "iso8601", "iso8601-datetime", "iso8601-date", "iso8601-time", "rfc3339"; empty if Pattern set
	Pattern string // custom date-time pattern; empty if Named set
}

// Uniqueness is one list-element uniqueness constraint.
type Uniqueness struct {
	ByFields []string // empty means Simple (scalar element equality); non-empty is a composite key
}

// IsSimple reports whether this is the Simple (scalar equality) form.
func (u Uniqueness) IsSimple() bool { return len(u.ByFields) == 0 }

// ListConstraints constrains a ListOf schema. Multiple Unique entries are
// independent constraints (DESIGN.md Open Questions).
type ListConstraints struct {
	Size   *IntRange
	Unique []Uniqueness
}
