// Package value implements the decoded, untyped value tree that the
// validator checks against a schema. It is deliberately small: every
// decoder (JSON, YAML, XML, CSV, ...) normalizes into this one shape.
package value

import "math/big"

// Kind identifies which variant a Value holds. Included on the Value itself
// so error messages can name the actual type without a type switch at every
// call site.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindText
	KindBinary
	KindList
	KindTuple
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an untyped, decoded value. Exactly one of the typed accessors is
// meaningful, selected by Kind.
type Value struct {
	kind   Kind
	b      bool
	num    *big.Rat
	text   string
	binary []byte
	list   []Value
	tuple  []Value
	object *Object
}

// Object is an ordered text-keyed mapping. Order is insertion order; it is
// not semantic for equality but is preserved so decoders that care about
// field order (CSV header projection, for instance) can rely on it.
type Object struct {
	keys   []string
	fields map[string]Value
}

// NewObject creates an empty, ordered Object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

// Set inserts or overwrites a field, preserving first-seen key order.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.fields[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
}

// Get returns the field and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Keys returns field names in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.keys)
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps an arbitrary-precision decimal.
func Number(r *big.Rat) Value { return Value{kind: KindNumber, num: r} }

// NumberFromInt wraps a plain integer as a Number.
func NumberFromInt(n int64) Value { return Number(new(big.Rat).SetInt64(n)) }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Binary wraps a byte sequence.
func Binary(b []byte) Value { return Value{kind: KindBinary, binary: b} }

// List wraps a homogeneous sequence.
func List(items []Value) Value { return Value{kind: KindList, list: items} }

// Tuple wraps a fixed-arity positional sequence.
func Tuple(items []Value) Value { return Value{kind: KindTuple, tuple: items} }

// FromObject wraps an Object.
func FromObject(o *Object) Value { return Value{kind: KindObject, object: o} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsNumber() (*big.Rat, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

func (v Value) AsBinary() ([]byte, bool) {
	return v.binary, v.kind == KindBinary
}

func (v Value) AsList() ([]Value, bool) {
	return v.list, v.kind == KindList
}

func (v Value) AsTuple() ([]Value, bool) {
	return v.tuple, v.kind == KindTuple
}

func (v Value) AsObject() (*Object, bool) {
	return v.object, v.kind == KindObject
}

// IsNull reports whether the value is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }
