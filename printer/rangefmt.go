package printer

import (
	"fmt"
	"strings"

	"github.com/veltrix/schemaforge/schema"
)

// These range/list-suffix renderers mirror package syntax's minimal-printer
// versions but are kept separate: this package formats for humans (width
// limits, indentation) while syntax's is the single-line grammar form.

func reverseMinOpSymbol(op schema.BoundOp) string {
	switch op {
	case schema.MinInclusive:
		return "<="
	case schema.MinExclusive:
		return "<"
	default:
		return "=="
	}
}

func intRangeText(keyword string, r *schema.IntRange) string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%d %s %s %s %d", r.Min.Value, reverseMinOpSymbol(r.Min.Op), keyword, r.Max.Op.String(), r.Max.Value)
	case r.Min != nil:
		return fmt.Sprintf("%s %s %d", keyword, r.Min.Op.String(), r.Min.Value)
	default:
		return fmt.Sprintf("%s %s %d", keyword, r.Max.Op.String(), r.Max.Value)
	}
}

func isPlainNonEmptyList(r *schema.IntRange) bool {
	return r != nil && r.Max == nil && r.Min != nil && r.Min.Op == schema.MinInclusive && r.Min.Value == 1
}

func listSuffix(cs schema.ListConstraints) string {
	if cs.Size == nil && len(cs.Unique) == 0 {
		return "*"
	}
	if isPlainNonEmptyList(cs.Size) && len(cs.Unique) == 0 {
		return "+"
	}
	var clauses []string
	if cs.Size != nil {
		clauses = append(clauses, intRangeText("size", cs.Size))
	}
	for _, u := range cs.Unique {
		if u.IsSimple() {
			clauses = append(clauses, "unique")
		} else {
			clauses = append(clauses, "unique = ("+strings.Join(u.ByFields, ", ")+")")
		}
	}
	return "+[" + strings.Join(clauses, ", ") + "]"
}
