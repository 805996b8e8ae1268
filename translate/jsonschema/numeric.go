package jsonschema

import (
	"github.com/goccy/go-json"

	"github.com/veltrix/schemaforge/schema"
)

func translateNumeric(obj map[string]any, integer bool, sc scope) (schema.Schema, error) {
	cs := schema.NumericConstraints{
		Value:   decimalRangeFromNumberKeywords(obj),
		Integer: integer,
	}

	if _, ok := obj["multipleOf"]; ok {
		sc.AddLoss("multipleOf has no equivalent constraint in this schema model")
	}

	var def *string
	if n, ok := obj["default"].(json.Number); ok {
		s := n.String()
		def = &s
	}
	return schema.Numeric(cs, def), nil
}
