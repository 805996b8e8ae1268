package validate

import (
	"math/big"

	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/value"
)

func validateBoolean(path string, v value.Value) Result {
	if _, ok := v.AsBool(); !ok {
		return fail(path, "type_mismatch", "expected a boolean, got "+v.Kind().String(), map[string]any{"kind": v.Kind().String()})
	}
	return ok()
}

func validateGivenText(path string, s schema.GivenTextSchema, v value.Value) Result {
	text, isText := v.AsText()
	if !isText {
		return fail(path, "type_mismatch", "expected the literal text "+quoted(s.Value)+", got "+v.Kind().String(), nil)
	}
	if text != s.Value {
		return fail(path, "literal_mismatch", "expected exactly "+quoted(s.Value), map[string]any{"expected": s.Value, "actual": text})
	}
	return Result{}
}

func validateText(path string, s schema.TextSchema, v value.Value) Result {
	text, isText := v.AsText()
	if !isText {
		return fail(path, "type_mismatch", "expected text, got "+v.Kind().String(), nil)
	}

	var out Result
	if s.Constraints.Size != nil && !checkIntRange(s.Constraints.Size, int64(len(text))) {
		out.Errors = append(out.Errors, Error{Path: path, Code: "size_constraint", Message: "text length violates size constraint (" + describeIntRange("length", s.Constraints.Size) + ")"})
	}
	if s.Constraints.Regex != nil {
		if m, rerr := regexMatch(*s.Constraints.Regex, text); rerr != nil {
			out.Errors = append(out.Errors, Error{Path: path, Code: "invalid_regex", Message: "invalid regex constraint: " + rerr.Error()})
		} else if !m {
			out.Errors = append(out.Errors, Error{Path: path, Code: "regex_mismatch", Message: "text does not match regex constraint"})
		}
	}
	if s.Constraints.Format != nil {
		matched, err := matchFormat(*s.Constraints.Format, text)
		if err != nil {
			out.Errors = append(out.Errors, Error{Path: path, Code: "invalid_format", Message: "invalid format constraint: " + err.Error()})
		} else if !matched {
			out.Errors = append(out.Errors, Error{Path: path, Code: "format_mismatch", Message: "text does not match format constraint"})
		}
	}
	return out
}

func validateNumeric(path string, s schema.NumericSchema, v value.Value) Result {
	num, fromNumber := v.AsNumber()
	if !fromNumber {
		text, isText := v.AsText()
		if !isText {
			return fail(path, "type_mismatch", "expected a number, got "+v.Kind().String(), nil)
		}
		parsed, ok := new(big.Rat).SetString(text)
		if !ok {
			return fail(path, "not_a_number", "text value is not parseable as a decimal number", map[string]any{"value": text})
		}
		num = parsed
	}

	var out Result
	if r := s.Constraints.Value; r != nil {
		if r.Min != nil && !boundSatisfiedDecimal(r.Min, num) {
			out.Errors = append(out.Errors, Error{Path: path, Code: "minimum_value_constraint", Message: "value violates minimum value constraint"})
		}
		if r.Max != nil && !boundSatisfiedDecimal(r.Max, num) {
			out.Errors = append(out.Errors, Error{Path: path, Code: "maximum_value_constraint", Message: "value violates maximum value constraint"})
		}
	}
	if s.Constraints.Integer && !num.IsInt() {
		out.Errors = append(out.Errors, Error{Path: path, Code: "not_whole", Message: "value must be a whole number"})
	}
	return out
}

func validateBinary(path string, s schema.BinarySchema, v value.Value) Result {
	raw, isBinary := v.AsBinary()
	if !isBinary {
		text, isText := v.AsText()
		if !isText {
			return fail(path, "type_mismatch", "expected binary data, got "+v.Kind().String(), nil)
		}
		if s.Constraints.Encoding == schema.EncodingNone {
			return fail(path, "type_mismatch", "text value has no encoding constraint to decode it as binary", nil)
		}
		decoded, err := decodeBinary(s.Constraints.Encoding, text)
		if err != nil {
			return fail(path, "decode_error", "failed to decode "+s.Constraints.Encoding.String()+" data: "+err.Error(), nil)
		}
		raw = decoded
	}

	if s.Constraints.Size != nil && !checkIntRange(s.Constraints.Size, int64(len(raw))) {
		return fail(path, "size_constraint", "binary size violates size constraint ("+describeIntRange("size", s.Constraints.Size)+")", nil)
	}
	return ok()
}

func validateTime(path string, s schema.TimeSchema, v value.Value) Result {
	text, isText := v.AsText()
	if !isText {
		return fail(path, "type_mismatch", "expected text, got "+v.Kind().String(), nil)
	}
	if len(s.Constraints) == 0 {
		return ok()
	}
	for _, c := range s.Constraints {
		if matchesTimeConstraint(c, text) {
			return ok()
		}
	}
	return fail(path, "time_format_mismatch", "text does not match any accepted time format", nil)
}

func validateEnum(path string, s schema.EnumSchema, v value.Value) Result {
	text, isText := v.AsText()
	if !isText {
		return fail(path, "type_mismatch", "expected text, got "+v.Kind().String(), nil)
	}
	for _, candidate := range s.Values {
		if candidate == text {
			return ok()
		}
	}
	return fail(path, "value_not_in_enum", "value must be one of the enumerated values", map[string]any{"values": s.Values})
}

func quoted(s string) string { return "\"" + s + "\"" }
