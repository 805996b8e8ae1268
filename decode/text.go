package decode

import "github.com/veltrix/schemaforge/value"

// TextDecoder treats the entire input as one Text value — the simplest of
// the §6.2 decoders, useful for schemas whose root is a plain Text/Enum/
// Time schema with no surrounding envelope format.
type TextDecoder struct{}

func (TextDecoder) Decode(text string) (value.Value, error) {
	return value.Text(text), nil
}
