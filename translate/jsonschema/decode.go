package jsonschema

import (
	"strings"

	"github.com/goccy/go-json"
)

// decodeJSON parses text into the generic any-tree dispatch.go switches
// over, decoding numbers as json.Number (UseNumber) rather than float64 so
// translateNumeric/translateRange never lose precision converting to
// math/big.Rat — consistent with this repo's big.Rat-everywhere numeric
// model (schema/constraints.go).
func decodeJSON(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
