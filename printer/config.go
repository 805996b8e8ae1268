// Package printer is the presentation layer over the schema IR (component
// E, spec §4.4): a separate, richer formatter than the single-line grammar
// shared by package syntax's parser and minimal printer. It offers three
// presets plus a free-form Config.
package printer

// Config controls how Print lays a schema out.
type Config struct {
	Indent               int
	MaxLineWidth         int
	ExpandObjects        bool
	ExpandAlternatives   bool
	ExpandTuples         bool
	ShowEmptyConstraints bool
}

// Compact renders everything on one line, no soft width limit.
func Compact() Config {
	return Config{}
}

// Pretty multi-lines objects, keeps unions inline, 4-space indent, 100-char
// soft limit.
func Pretty() Config {
	return Config{Indent: 4, MaxLineWidth: 100, ExpandObjects: true}
}

// Expanded multi-lines objects, alternatives, and tuples; 80-char soft
// limit, 4-space indent.
func Expanded() Config {
	return Config{
		Indent:             4,
		MaxLineWidth:       80,
		ExpandObjects:      true,
		ExpandAlternatives: true,
		ExpandTuples:       true,
	}
}
