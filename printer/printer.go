package printer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/syntax"
)

// Print renders s per cfg (spec §4.4).
func Print(s schema.Schema, cfg Config) string {
	p := &printer{cfg: cfg}
	return p.printItem(s, 0)
}

type printer struct {
	cfg Config
}

func (p *printer) indentStr(depth int) string {
	return strings.Repeat(" ", p.cfg.Indent*depth)
}

func (p *printer) fits(s string) bool {
	if p.cfg.MaxLineWidth <= 0 {
		return true
	}
	return !strings.Contains(s, "\n") && len(s) <= p.cfg.MaxLineWidth
}

func isComplex(s schema.Schema) bool {
	switch schema.Unwrap(s).(type) {
	case schema.ObjectSchema, schema.MapSchema, schema.TupleSchema, schema.AlternativesSchema:
		return true
	}
	return false
}

func extractDoc(s schema.Schema) (string, schema.Schema) {
	if d, ok := s.(schema.DocumentedSchema); ok {
		return d.Doc, d.Inner
	}
	return "", s
}

func hasDefault(s schema.Schema) bool {
	switch v := s.(type) {
	case schema.BooleanSchema:
		return v.Default != nil
	case schema.TextSchema:
		return v.Default != nil
	case schema.NumericSchema:
		return v.Default != nil
	}
	return false
}

func (p *printer) precedingDoc(doc string, depth int) string {
	var b strings.Builder
	for _, line := range strings.Split(doc, "\n") {
		b.WriteString(p.indentStr(depth) + "## " + line + "\n")
	}
	return b.String()
}

func (p *printer) printItem(s schema.Schema, depth int) string {
	switch v := s.(type) {
	case schema.DocumentedSchema:
		inner := p.printItem(v.Inner, depth)
		if isComplex(v.Inner) {
			return p.precedingDoc(v.Doc, depth) + inner
		}
		return inner + "  ## " + v.Doc
	case schema.DeprecatedSchema:
		return p.printItem(v.Inner, depth)
	case schema.ObjectSchema:
		return p.printObject(v, depth)
	case schema.MapSchema:
		return "{ …: " + p.printItem(v.ValueSchema, depth) + " }"
	case schema.TupleSchema:
		return p.printTuple(v, depth)
	case schema.AlternativesSchema:
		return p.printAlternatives(v, depth)
	case schema.ListOfSchema:
		return p.printItem(v.Element, depth) + listSuffix(v.Constraints)
	default:
		return syntax.Print(s)
	}
}

func (p *printer) inlineObjectFields(o schema.ObjectSchema, depth int) []string {
	parts := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		doc, fieldSchema := extractDoc(f.Schema)
		rendered := p.printItem(fieldSchema, depth)
		suffix := ""
		if !f.Label.Mandatory && !hasDefault(fieldSchema) {
			suffix = "?"
		}
		part := fmt.Sprintf("%s%s: %s", f.Label.Name, suffix, rendered)
		if doc != "" {
			part += "  ## " + doc
		}
		parts[i] = part
	}
	return parts
}

func (p *printer) printObject(o schema.ObjectSchema, depth int) string {
	if len(o.Fields) == 0 {
		return "{}"
	}
	inline := "{ " + strings.Join(p.inlineObjectFields(o, depth), ", ") + " }"
	if !p.cfg.ExpandObjects && p.fits(inline) {
		return inline
	}

	inner := depth + 1
	fields := o.Fields
	if p.cfg.ExpandObjects {
		// Expanded objects (the Pretty and Expanded presets) list fields
		// sorted by name; the inline form keeps declaration order.
		fields = append([]schema.ObjectField(nil), o.Fields...)
		sort.SliceStable(fields, func(i, j int) bool { return fields[i].Label.Name < fields[j].Label.Name })
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, f := range fields {
		doc, fieldSchema := extractDoc(f.Schema)
		rendered := p.printItem(fieldSchema, inner)
		suffix := ""
		if !f.Label.Mandatory && !hasDefault(fieldSchema) {
			suffix = "?"
		}
		line := fmt.Sprintf("%s%s%s: %s", p.indentStr(inner), f.Label.Name, suffix, rendered)
		if doc != "" {
			if isComplex(fieldSchema) {
				b.WriteString(p.precedingDoc(doc, inner))
			} else {
				line += "  ## " + doc
			}
		}
		b.WriteString(line)
		if i < len(o.Fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(p.indentStr(depth) + "}")
	return b.String()
}

func (p *printer) printTuple(t schema.TupleSchema, depth int) string {
	inner := depth + 1
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = p.printItem(e, inner)
	}
	inline := "(" + strings.Join(parts, ", ") + ")"
	if !p.cfg.ExpandTuples && p.fits(inline) {
		return inline
	}

	var b strings.Builder
	b.WriteString("(\n")
	for i, part := range parts {
		b.WriteString(p.indentStr(inner) + part)
		if i < len(parts)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(p.indentStr(depth) + ")")
	return b.String()
}

// printAlternatives: expanded form prints the first option without a
// leading "|" (spec §4.4).
func (p *printer) printAlternatives(a schema.AlternativesSchema, depth int) string {
	parts := make([]string, len(a.Options))
	for i, o := range a.Options {
		parts[i] = p.printItem(o, depth)
	}
	inline := strings.Join(parts, " | ")
	if !p.cfg.ExpandAlternatives && p.fits(inline) {
		return inline
	}

	var b strings.Builder
	for i, part := range parts {
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString("\n" + p.indentStr(depth) + "| " + part)
	}
	return b.String()
}
