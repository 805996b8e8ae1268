package syntax

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/veltrix/schemaforge/schema"
)

// Print renders s using the same single-line grammar Parse consumes: this
// is the minimal bidirectional form (spec §4.3.8), not the presentation
// layer's multi-preset pretty-printer (that lives in package printer).
func Print(s schema.Schema) string {
	switch sv := s.(type) {
	case schema.AnySchema:
		return "any"
	case schema.FailSchema:
		return "fail"
	case schema.BooleanSchema:
		if sv.Default == nil {
			return "boolean"
		}
		if *sv.Default {
			return "boolean = true"
		}
		return "boolean = false"
	case schema.GivenTextSchema:
		return quoteString(sv.Value)
	case schema.TextSchema:
		return printText(sv)
	case schema.NumericSchema:
		return printNumeric(sv)
	case schema.BinarySchema:
		return printBinary(sv)
	case schema.TimeSchema:
		return printTime(sv)
	case schema.EnumSchema:
		return printEnum(sv)
	case schema.ListOfSchema:
		return printListOf(sv)
	case schema.TupleSchema:
		parts := make([]string, len(sv.Elements))
		for i, e := range sv.Elements {
			parts[i] = Print(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case schema.AlternativesSchema:
		parts := make([]string, len(sv.Options))
		for i, o := range sv.Options {
			parts[i] = Print(o)
		}
		return strings.Join(parts, " | ")
	case schema.ObjectSchema:
		return printObject(sv)
	case schema.MapSchema:
		return "{ …: " + Print(sv.ValueSchema) + " }"
	case schema.RefSchema:
		return sv.Name
	case schema.ScopedRefSchema:
		if sv.Name == "" {
			return sv.Namespace
		}
		return sv.Namespace + "." + sv.Name
	case schema.ImportSchema:
		return "import " + quoteString(sv.Path)
	case schema.DocumentedSchema:
		return Print(sv.Inner)
	case schema.DeprecatedSchema:
		return Print(sv.Inner)
	default:
		return "any"
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// reverseMinOpSymbol is the left-hand operator of a double-bound print
// ("V <= KEY <= V"), the mirror image of the bound's own Min operator.
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

func ratText(r *big.Rat) string {
	if r.IsInt() {
		return r.RatString()
	}
	return r.FloatString(6)
}

func decimalRangeText(keyword string, r *schema.DecimalRange) string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%s %s %s %s %s", ratText(r.Min.Value), reverseMinOpSymbol(r.Min.Op), keyword, r.Max.Op.String(), ratText(r.Max.Value))
	case r.Min != nil:
		return fmt.Sprintf("%s %s %s", keyword, r.Min.Op.String(), ratText(r.Min.Value))
	default:
		return fmt.Sprintf("%s %s %s", keyword, r.Max.Op.String(), ratText(r.Max.Value))
	}
}

func printText(s schema.TextSchema) string {
	var b strings.Builder
	b.WriteString("text")
	var clauses []string
	if s.Constraints.Size != nil {
		clauses = append(clauses, intRangeText("length", s.Constraints.Size))
	}
	if s.Constraints.Regex != nil {
		clauses = append(clauses, "regex = "+quoteString(*s.Constraints.Regex))
	}
	if s.Constraints.Format != nil {
		clauses = append(clauses, "format = "+quoteString(*s.Constraints.Format))
	}
	if len(clauses) > 0 {
		b.WriteString(" [" + strings.Join(clauses, ", ") + "]")
	}
	if s.Default != nil {
		b.WriteString(" = " + quoteString(*s.Default))
	}
	return b.String()
}

func printNumeric(s schema.NumericSchema) string {
	var b strings.Builder
	b.WriteString("number")
	var clauses []string
	if s.Constraints.Value != nil {
		clauses = append(clauses, decimalRangeText("value", s.Constraints.Value))
	}
	if s.Constraints.Integer {
		clauses = append(clauses, "integer")
	}
	if len(clauses) > 0 {
		b.WriteString(" [" + strings.Join(clauses, ", ") + "]")
	}
	if s.Default != nil {
		b.WriteString(" = " + *s.Default)
	}
	return b.String()
}

func printBinary(s schema.BinarySchema) string {
	var clauses []string
	if s.Constraints.Size != nil {
		clauses = append(clauses, intRangeText("size", s.Constraints.Size))
	}
	if s.Constraints.Encoding != schema.EncodingNone {
		clauses = append(clauses, "encoding = "+s.Constraints.Encoding.String())
	}
	if len(clauses) == 0 {
		return "binary"
	}
	return "binary [" + strings.Join(clauses, ", ") + "]"
}

func printTime(s schema.TimeSchema) string {
	if len(s.Constraints) == 0 {
		return "time"
	}
	parts := make([]string, len(s.Constraints))
	for i, c := range s.Constraints {
		if c.Pattern != "" {
			parts[i] = "format = " + quoteString(c.Pattern)
		} else {
			parts[i] = "format = " + c.Named
		}
	}
	return "time [" + strings.Join(parts, ", ") + "]"
}

func printEnum(s schema.EnumSchema) string {
	parts := make([]string, len(s.Values))
	for i, v := range s.Values {
		parts[i] = quoteString(v)
	}
	return strings.Join(parts, " | ")
}

func isPlainNonEmptyList(r *schema.IntRange) bool {
	return r != nil && r.Max == nil && r.Min != nil && r.Min.Op == schema.MinInclusive && r.Min.Value == 1
}

func printListOf(s schema.ListOfSchema) string {
	elem := Print(s.Element)
	if s.Constraints.Size == nil && len(s.Constraints.Unique) == 0 {
		return elem + "*"
	}
	if isPlainNonEmptyList(s.Constraints.Size) && len(s.Constraints.Unique) == 0 {
		return elem + "+"
	}
	var clauses []string
	if s.Constraints.Size != nil {
		clauses = append(clauses, intRangeText("size", s.Constraints.Size))
	}
	for _, u := range s.Constraints.Unique {
		if u.IsSimple() {
			clauses = append(clauses, "unique")
		} else {
			clauses = append(clauses, "unique = ("+strings.Join(u.ByFields, ", ")+")")
		}
	}
	return elem + "+[" + strings.Join(clauses, ", ") + "]"
}

func printObject(s schema.ObjectSchema) string {
	if len(s.Fields) == 0 {
		return "{}"
	}
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		suffix := ""
		if !f.Label.Mandatory {
			suffix = "?"
		}
		parts[i] = fmt.Sprintf("%s%s: %s", f.Label.Name, suffix, Print(f.Schema))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
