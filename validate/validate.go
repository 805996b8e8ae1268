package validate

import (
	"errors"

	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/value"
)

// ErrRecursionLimit is a hard error returned when validation recurses past
// Options.MaxDepth (spec §5: "Implementations should enforce a configurable
// recursion limit defensively").
var ErrRecursionLimit = errors.New("validate: recursion limit exceeded")

// DefaultMaxDepth is used when Options.MaxDepth is zero.
const DefaultMaxDepth = 200

// Options configures a top-level Validate call.
type Options struct {
	MaxDepth int
}

// Validate interprets s against v and returns a path-annotated Result.
// Ref/ScopedRef/Import reaching the validator are programmer errors (the
// schema should have been resolved first, component C) and are reported as
// ordinary validation errors rather than panics, per spec §4.5.
func Validate(s schema.Schema, v value.Value, opts ...Options) (Result, error) {
	maxDepth := DefaultMaxDepth
	if len(opts) > 0 && opts[0].MaxDepth > 0 {
		maxDepth = opts[0].MaxDepth
	}
	e := &engine{maxDepth: maxDepth}
	res := e.validate("", s, v, 0)
	if e.limitHit {
		return Result{}, ErrRecursionLimit
	}
	return res, nil
}

// engine carries the one thing that must survive across the whole
// recursive descent of a single Validate call: whether the recursion-depth
// guard tripped. It is never shared across calls or goroutines (spec §5:
// single-threaded cooperative within one operation).
type engine struct {
	maxDepth int
	limitHit bool
}

func (e *engine) validate(path string, s schema.Schema, v value.Value, depth int) Result {
	if e.limitHit {
		return Result{}
	}
	if depth > e.maxDepth {
		e.limitHit = true
		return Result{}
	}

	switch sv := s.(type) {
	case schema.AnySchema:
		return ok()
	case schema.FailSchema:
		return fail(path, "fail_value", "fail value", nil)
	case schema.BooleanSchema:
		return validateBoolean(path, v)
	case schema.TextSchema:
		return validateText(path, sv, v)
	case schema.GivenTextSchema:
		return validateGivenText(path, sv, v)
	case schema.NumericSchema:
		return validateNumeric(path, sv, v)
	case schema.BinarySchema:
		return validateBinary(path, sv, v)
	case schema.TimeSchema:
		return validateTime(path, sv, v)
	case schema.EnumSchema:
		return validateEnum(path, sv, v)
	case schema.ListOfSchema:
		return validateListOf(e, path, sv, v, depth)
	case schema.TupleSchema:
		return validateTuple(e, path, sv, v, depth)
	case schema.AlternativesSchema:
		return validateAlternatives(e, path, sv, v, depth)
	case schema.ObjectSchema:
		return validateObject(e, path, sv, v, depth)
	case schema.MapSchema:
		return validateMap(e, path, sv, v, depth)
	case schema.DocumentedSchema:
		return e.validate(path, sv.Inner, v, depth)
	case schema.DeprecatedSchema:
		return e.validate(path, sv.Inner, v, depth)
	case schema.RefSchema:
		return fail(path, "unresolved_reference", "unresolved reference to "+sv.Name, map[string]any{"name": sv.Name})
	case schema.ScopedRefSchema:
		return fail(path, "unresolved_reference", "unresolved reference to "+sv.Key(), map[string]any{"name": sv.Key()})
	case schema.ImportSchema:
		return fail(path, "unresolved_reference", "unresolved import "+sv.Namespace, map[string]any{"namespace": sv.Namespace})
	default:
		return fail(path, "unknown_schema", "unknown schema variant", nil)
	}
}
