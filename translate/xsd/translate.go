package xsd

import (
	"math/big"

	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// resolveType maps an XSD type reference (qualified or not) to an IR
// schema: a built-in maps inline, a named complexType/simpleType is
// translated once and returned by Ref, memoized in reg/defs so repeated
// references produce the same definition rather than re-translating.
func resolveType(typeName string, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	local := localName(typeName)
	if s, ok, lossy := builtinType(local); ok {
		if lossy {
			ctx.AddLoss("XSD type \"" + typeName + "\" has no transferable semantics in this schema model; mapped to a plain type")
		}
		return s, nil
	}
	return resolveNamedType(local, ctx, reg, defs)
}

func resolveNamedType(local string, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	if reg.translated[local] || reg.inProgress[local] {
		return schema.Ref(local), nil
	}

	if ct, ok := reg.complexTypes[local]; ok {
		reg.inProgress[local] = true
		translated, err := translateComplexType(ct, ctx.AtPath(local), reg, defs)
		delete(reg.inProgress, local)
		if err != nil {
			return nil, err
		}
		reg.translated[local] = true
		defs[local] = translated
		return schema.Ref(local), nil
	}

	if st, ok := reg.simpleTypes[local]; ok {
		reg.inProgress[local] = true
		translated, err := translateSimpleType(st, ctx.AtPath(local), reg)
		delete(reg.inProgress, local)
		if err != nil {
			return nil, err
		}
		reg.translated[local] = true
		defs[local] = translated
		return schema.Ref(local), nil
	}

	ctx.AddExtension("unknown XSD type \"" + local + "\"")
	return schema.Any(), nil
}

// translateElementInline translates el's own content model — its
// complexType, simpleType, or type reference — without the occurs/label
// wrapping translateElementField applies for a containing sequence/all.
func translateElementInline(el xsdElement, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	if el.Ref != "" {
		target, ok := reg.elements[localName(el.Ref)]
		if !ok {
			ctx.AddExtension("element ref \"" + el.Ref + "\" does not resolve to a top-level element")
			return schema.Any(), nil
		}
		return translateElementInline(target, ctx, reg, defs)
	}
	if el.ComplexType != nil {
		return translateComplexType(*el.ComplexType, ctx, reg, defs)
	}
	if el.SimpleType != nil {
		return translateSimpleType(*el.SimpleType, ctx, reg)
	}
	if el.Type != "" {
		return resolveType(el.Type, ctx, reg, defs)
	}
	ctx.AddExtension("element \"" + el.Name + "\" has no type, inline content, or ref; represented as Any")
	return schema.Any(), nil
}

func elementFieldName(el xsdElement) string {
	if el.Name != "" {
		return el.Name
	}
	return localName(el.Ref)
}

// translateElementField translates el as one Object field: its content
// model plus spec §4.9's occurs-to-List and minOccurs-to-label mapping.
func translateElementField(el xsdElement, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.ObjectField, error) {
	name := elementFieldName(el)
	inner, err := translateElementInline(el, ctx.AtPath(name), reg, defs)
	if err != nil {
		return schema.ObjectField{}, err
	}
	if el.repeated() {
		inner = schema.ListOf(inner, schema.ListConstraints{})
	}
	label := schema.Optional(name)
	if el.mandatory() {
		label = schema.Mandatory(name)
	}
	return schema.ObjectField{Label: label, Schema: inner}, nil
}

func translateAttribute(a xsdAttribute, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.ObjectField, error) {
	name := "@" + a.Name
	var inner schema.Schema = schema.Text(schema.TextConstraints{}, nil)
	if a.Type != "" {
		translated, err := resolveType(a.Type, ctx.AtPath(name), reg, defs)
		if err != nil {
			return schema.ObjectField{}, err
		}
		inner = translated
	}
	label := schema.Optional(name)
	if a.Use == "required" {
		label = schema.Mandatory(name)
	}
	return schema.ObjectField{Label: label, Schema: inner}, nil
}

// allAnonymousRefs reports whether every member of a sequence is an
// unnamed xs:ref element — the shape spec §4.9 calls out as the anonymous
// case that becomes a Tuple rather than an Object.
func allAnonymousRefs(elements []xsdElement) bool {
	if len(elements) == 0 {
		return false
	}
	for _, el := range elements {
		if el.Name != "" {
			return false
		}
	}
	return true
}

// translateComplexType implements spec §4.9's complex-type mapping:
// sequence -> Object (or Tuple for anonymous members), choice ->
// Alternatives, all -> Object with an ordering-not-preserved
// Approximation, simpleContent extension -> Object with "_value" plus
// attribute fields. Attributes always add "@"-prefixed fields.
func translateComplexType(ct xsdComplexType, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	if ct.SimpleContent != nil && ct.SimpleContent.Extension != nil {
		return translateSimpleContentExtension(*ct.SimpleContent.Extension, ctx, reg, defs)
	}

	switch {
	case ct.Sequence != nil:
		if allAnonymousRefs(ct.Sequence.Elements) {
			return translateAnonymousTuple(ct.Sequence.Elements, ctx, reg, defs)
		}
		fields, err := translateFieldList(ct.Sequence.Elements, ct.Attributes, ctx, reg, defs)
		if err != nil {
			return nil, err
		}
		return schema.ObjectOf(fields), nil

	case ct.Choice != nil:
		if len(ct.Attributes) > 0 {
			ctx.AddApproximation("attributes alongside xs:choice are not merged into the resulting Alternatives")
		}
		return translateChoice(ct.Choice.Elements, ctx, reg, defs)

	case ct.All != nil:
		ctx.AddApproximation("xs:all ordering not preserved")
		fields, err := translateFieldList(ct.All.Elements, ct.Attributes, ctx, reg, defs)
		if err != nil {
			return nil, err
		}
		return schema.ObjectOf(fields), nil
	}

	fields, err := translateFieldList(nil, ct.Attributes, ctx, reg, defs)
	if err != nil {
		return nil, err
	}
	return schema.ObjectOf(fields), nil
}

func translateFieldList(elements []xsdElement, attrs []xsdAttribute, ctx translate.Context, reg *registry, defs map[string]schema.Schema) ([]schema.ObjectField, error) {
	fields := make([]schema.ObjectField, 0, len(elements)+len(attrs))
	for _, el := range elements {
		f, err := translateElementField(el, ctx, reg, defs)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	for _, a := range attrs {
		f, err := translateAttribute(a, ctx, reg, defs)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func translateAnonymousTuple(elements []xsdElement, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	parts := make([]schema.Schema, 0, len(elements))
	for i, el := range elements {
		s, err := translateElementInline(el, ctx.AtPath(indexSegment(i)), reg, defs)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return schema.TupleOf(padTuple(parts)), nil
}

func translateChoice(elements []xsdElement, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	options := make([]schema.Schema, 0, len(elements))
	for _, el := range elements {
		s, err := translateElementInline(el, ctx.AtPath(elementFieldName(el)), reg, defs)
		if err != nil {
			return nil, err
		}
		options = append(options, s)
	}
	switch len(options) {
	case 0:
		return schema.Any(), nil
	case 1:
		return options[0], nil
	default:
		return schema.Alternatives(options), nil
	}
}

func translateSimpleContentExtension(ext xsdExtension, ctx translate.Context, reg *registry, defs map[string]schema.Schema) (schema.Schema, error) {
	base, err := resolveType(ext.Base, ctx.AtPath("_value"), reg, defs)
	if err != nil {
		return nil, err
	}
	fields := []schema.ObjectField{{Label: schema.Mandatory("_value"), Schema: base}}
	for _, a := range ext.Attributes {
		f, err := translateAttribute(a, ctx, reg, defs)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return schema.ObjectOf(fields), nil
}

// translateSimpleType implements the restriction-facet mapping: size
// facets onto Text/Numeric ranges, enumeration onto a text Enum (with an
// Approximation if the restricted base isn't itself text).
func translateSimpleType(st xsdSimpleType, ctx translate.Context, reg *registry) (schema.Schema, error) {
	if st.Restriction == nil {
		ctx.AddExtension("simple type has no restriction; represented as Any")
		return schema.Any(), nil
	}
	r := st.Restriction

	base, ok, lossy := builtinType(localName(r.Base))
	if !ok {
		ctx.AddExtension("simple type base \"" + r.Base + "\" is not a recognized XSD built-in; treated as text")
		base = schema.Text(schema.TextConstraints{}, nil)
	} else if lossy {
		ctx.AddLoss("XSD type \"" + r.Base + "\" has no transferable semantics in this schema model; mapped to a plain type")
	}

	if len(r.Enumeration) > 0 {
		values := make([]string, len(r.Enumeration))
		for i, e := range r.Enumeration {
			values[i] = e.Value
		}
		if _, isText := base.(schema.TextSchema); !isText {
			ctx.AddApproximation("enumeration restricts a non-text base type; represented as a text Enum")
		}
		return schema.Enum(values), nil
	}

	switch b := base.(type) {
	case schema.TextSchema:
		cs := b.Constraints
		cs.Size = intRangeFromFacets(r.MinLength, r.MaxLength)
		if r.Pattern != nil {
			p := r.Pattern.Value
			cs.Regex = &p
		}
		return schema.Text(cs, nil), nil
	case schema.NumericSchema:
		cs := b.Constraints
		cs.Value = decimalRangeFromFacets(r.MinInclusive, r.MaxInclusive)
		return schema.Numeric(cs, nil), nil
	default:
		return base, nil
	}
}

func intRangeFromFacets(minF, maxF *xsdFacet) *schema.IntRange {
	var rng schema.IntRange
	set := false
	if minF != nil {
		if v, ok := parseInt(minF.Value); ok {
			rng.Min = &schema.Bound[int64]{Op: schema.MinInclusive, Value: v}
			set = true
		}
	}
	if maxF != nil {
		if v, ok := parseInt(maxF.Value); ok {
			rng.Max = &schema.Bound[int64]{Op: schema.MaxInclusive, Value: v}
			set = true
		}
	}
	if !set {
		return nil
	}
	return &rng
}

func decimalRangeFromFacets(minF, maxF *xsdFacet) *schema.DecimalRange {
	var rng schema.DecimalRange
	set := false
	if minF != nil {
		if v, ok := parseRat(minF.Value); ok {
			rng.Min = &schema.Bound[*big.Rat]{Op: schema.MinInclusive, Value: v}
			set = true
		}
	}
	if maxF != nil {
		if v, ok := parseRat(maxF.Value); ok {
			rng.Max = &schema.Bound[*big.Rat]{Op: schema.MaxInclusive, Value: v}
			set = true
		}
	}
	if !set {
		return nil
	}
	return &rng
}
