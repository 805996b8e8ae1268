// Package validate interprets a schema.Schema against a decoded value.Value,
// producing a structured, path-annotated verdict. Validators aggregate
// errors rather than short-circuiting (spec §7): every mismatch beneath the
// root is reported, not just the first one found.
package validate

import (
	"strconv"

	"github.com/kaptinlin/go-i18n"
)

// Error is one path-annotated validation failure.
type Error struct {
	Path    string
	Message string
	// Code and Params support localization via Localize, mirroring the
	// teacher's EvaluationError/i18n split (result.go, i18n.go): Message is
	// already-formatted English, Code+Params let a caller re-render it in
	// another language without re-deriving the failure.
	Code   string
	Params map[string]any
}

// Localize renders the error's message using localizer, falling back to the
// pre-formatted English Message when no localizer or no translation for
// Code is available.
func (e Error) Localize(localizer *i18n.Localizer) string {
	if localizer == nil || e.Code == "" {
		return e.Message
	}
	if translated := localizer.Get(e.Code, i18n.Vars(e.Params)); translated != "" {
		return translated
	}
	return e.Message
}

// Result is the verdict of one Validate call: Valid iff Errors is empty.
type Result struct {
	Errors []Error
}

// Valid reports whether the result carries no errors.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

func ok() Result { return Result{} }

func fail(path, code, message string, params map[string]any) Result {
	return Result{Errors: []Error{{Path: path, Message: message, Code: code, Params: params}}}
}

// Summarize concatenates errors from every sub-result; the combined result
// is Valid iff every sub-result was Valid (spec §4.5 Aggregation).
func Summarize(results ...Result) Result {
	var out Result
	for _, r := range results {
		out.Errors = append(out.Errors, r.Errors...)
	}
	return out
}

func joinPath(base, segment string) string {
	if base == "" {
		return segment
	}
	return base + "." + segment
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
