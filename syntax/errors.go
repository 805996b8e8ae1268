package syntax

import "fmt"

// ParseError is the single diagnostic a parse failure surfaces (spec §7:
// "parsers short-circuit on the first syntax error with one diagnostic").
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax: line %d: %s", e.Line, e.Message)
}
