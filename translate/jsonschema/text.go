package jsonschema

import "github.com/veltrix/schemaforge/schema"

// knownTextFormats are JSON Schema string formats with a direct
// Text.Format equivalent (spec §4.8.2); anything else still becomes
// Text.Format but is flagged as an Extension since it relies on a dialect
// beyond the core vocabulary.
var knownTextFormats = map[string]bool{
	"email": true, "uri": true, "uuid": true,
	"ipv4": true, "ipv6": true, "hostname": true,
}

func translateString(obj map[string]any, sc scope) (schema.Schema, error) {
	if format, ok := asString(obj["format"]); ok {
		switch format {
		case "date-time":
			return schema.Time([]schema.TimeConstraint{{Named: "rfc3339"}}), nil
		case "date":
			return schema.Time([]schema.TimeConstraint{{Named: "iso8601-date"}}), nil
		case "time":
			return schema.Time([]schema.TimeConstraint{{Named: "iso8601-time"}}), nil
		case "byte":
			return schema.Binary(schema.BinaryConstraints{Encoding: schema.EncodingBase64}), nil
		}
	}

	cs := schema.TextConstraints{Size: intRangeFromMinMax(obj, "minLength", "maxLength")}
	if pattern, ok := asString(obj["pattern"]); ok {
		cs.Regex = &pattern
	}
	if format, ok := asString(obj["format"]); ok {
		cs.Format = &format
		if !knownTextFormats[format] {
			sc.AddExtension("string format \"" + format + "\" is not part of the core vocabulary")
		}
	}

	var def *string
	if d, ok := asString(obj["default"]); ok {
		def = &d
	}
	return schema.Text(cs, def), nil
}
