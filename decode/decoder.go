package decode

import "github.com/veltrix/schemaforge/value"

// Decoder is the uniform shape §6.2 names for formats that need no
// external hint: decode(text) -> Value. CSV is the one exception (it is
// schema-driven, per §6.2) and exposes its own Decode signature instead.
type Decoder interface {
	Decode(text string) (value.Value, error)
}
