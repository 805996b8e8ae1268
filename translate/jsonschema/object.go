package jsonschema

import "github.com/veltrix/schemaforge/schema"

var unsupportedObjectKeywords = []string{
	"patternProperties", "propertyNames", "minProperties", "maxProperties",
	"dependentRequired", "dependentSchemas",
}

// translateObject implements spec §4.8.6: combine allOf (with inlining),
// direct properties, and additionalProperties into one Object (or a Map
// fallback), in the order the spec lays out.
func translateObject(obj map[string]any, sc scope) (schema.Schema, error) {
	reportUnsupportedObjectKeywords(obj, sc)

	allOfFields, allOfApplies, err := translateAllOf(obj, sc)
	if err != nil {
		return nil, err
	}
	propsFields, propsApplies, err := translatePropertiesFields(obj, sc)
	if err != nil {
		return nil, err
	}

	if allOfApplies || propsApplies {
		return schema.ObjectOf(mergeObjectFields(allOfFields, propsFields)), nil
	}

	if ap, hasAP := obj["additionalProperties"]; hasAP {
		if b, ok := ap.(bool); ok && !b {
			sc.AddApproximation("object with additionalProperties: false and no properties is represented as an open map of Any")
			return schema.MapOf(schema.Any()), nil
		}
		valueSchema, err := translateValue(ap, sc.AtPath("additionalProperties"))
		if err != nil {
			return nil, err
		}
		return schema.MapOf(valueSchema), nil
	}

	return schema.ObjectOf(nil), nil
}

func reportUnsupportedObjectKeywords(obj map[string]any, sc scope) {
	for _, k := range unsupportedObjectKeywords {
		if _, ok := obj[k]; ok {
			sc.AddLoss(k + " has no equivalent constraint in this schema model")
		}
	}
}

// translatePropertiesFields translates `properties` (mandatory per
// `required`, optional otherwise), in sorted key order for deterministic
// output (spec §5) since map[string]any iteration order is not stable.
func translatePropertiesFields(obj map[string]any, sc scope) ([]schema.ObjectField, bool, error) {
	props, ok := asObject(obj["properties"])
	if !ok {
		return nil, false, nil
	}

	required := map[string]bool{}
	if reqArr, ok := asArray(obj["required"]); ok {
		for _, r := range reqArr {
			if name, ok := asString(r); ok {
				required[name] = true
			}
		}
	}

	fields := make([]schema.ObjectField, 0, len(props))
	for _, name := range sortedKeys(props) {
		fieldSchema, nullable, err := translateObjectFieldSchema(props[name], sc.AtPath("properties").AtPath(name))
		if err != nil {
			return nil, false, err
		}
		label := schema.Optional(name)
		if required[name] && !nullable {
			label = schema.Mandatory(name)
		}
		fields = append(fields, schema.ObjectField{Label: label, Schema: fieldSchema})
	}
	return fields, true, nil
}

// translateObjectFieldSchema special-cases `"type": [T, "null"]` on a
// property (spec §8.1's optionality-via-null invariant): the null member
// is stripped before the ordinary translation and reported back as
// nullable so the caller can force the label Optional even if the name
// also appears in `required`.
func translateObjectFieldSchema(raw any, sc scope) (schema.Schema, bool, error) {
	obj, ok := asObject(raw)
	if !ok {
		translated, err := translateValue(raw, sc)
		return translated, false, err
	}
	types, ok := asArray(obj["type"])
	if !ok {
		translated, err := translateValue(raw, sc)
		return translated, false, err
	}
	nullable := false
	for _, t := range types {
		if name, ok := asString(t); ok && name == "null" {
			nullable = true
			break
		}
	}
	translated, err := translateObjectNode(obj, sc)
	return translated, nullable, err
}

// translateAllOf translates every allOf member — inlining direct
// `$defs`/`definitions` refs so their fields can be merged rather than
// staying opaque — and merges the resulting Object field sets. A member
// that is itself anyOf/oneOf has its object-shaped alternatives flattened
// and merged in too (the common "base + extension variants" pattern).
func translateAllOf(obj map[string]any, sc scope) ([]schema.ObjectField, bool, error) {
	members, ok := asArray(obj["allOf"])
	if !ok {
		return nil, false, nil
	}

	var fields []schema.ObjectField
	nonObjectCount := 0
	for i, m := range members {
		memberScope := sc.AtPath("allOf").AtPath(indexSegment(i))
		translated, err := translateAllOfMember(m, memberScope)
		if err != nil {
			return nil, false, err
		}
		memberFields, isObjectShaped := flattenMergeableFields(translated)
		if !isObjectShaped {
			nonObjectCount++
			continue
		}
		fields = mergeFieldsRequiredWins(fields, memberFields)
	}

	if nonObjectCount > 0 {
		if len(fields) > 0 {
			sc.AddApproximation("allOf members that are not objects are ignored once at least one object member is present")
		} else {
			sc.AddLoss("allOf intersection of non-object schemas is not preserved")
		}
	}

	return fields, true, nil
}

// translateAllOfMember translates one allOf entry, inlining it in place
// when it is an exact `$defs`/`definitions` ref so the caller can merge
// its fields; any other shape translates normally.
func translateAllOfMember(member any, sc scope) (schema.Schema, error) {
	obj, ok := asObject(member)
	if !ok {
		return translateValue(member, sc)
	}
	ref, ok := asString(obj["$ref"])
	if !ok {
		return translateValue(member, sc)
	}
	name, ok := exactDefRef(ref)
	if !ok {
		return translateValue(member, sc)
	}

	sc.AddReferencedDef(name)
	if sc.IsResolvingRef(name) {
		return schema.Ref(name), nil
	}
	def, found := sc.Definitions[name]
	if !found {
		sc.AddLoss("definition \"" + name + "\" referenced by allOf could not be found")
		return schema.Any(), nil
	}
	return translateValue(def, sc.AtPath(name).WithResolvedRef(name))
}

// flattenMergeableFields extracts an Object's fields directly, or — for
// an Alternatives produced by a nested anyOf/oneOf allOf member — merges
// every object-shaped option's fields into one flat set.
func flattenMergeableFields(s schema.Schema) ([]schema.ObjectField, bool) {
	switch v := schema.Unwrap(s).(type) {
	case schema.ObjectSchema:
		return v.Fields, true
	case schema.AlternativesSchema:
		var fields []schema.ObjectField
		any := false
		for _, opt := range v.Options {
			if of, ok := schema.Unwrap(opt).(schema.ObjectSchema); ok {
				fields = mergeFieldsRequiredWins(fields, of.Fields)
				any = true
			}
		}
		return fields, any
	default:
		return nil, false
	}
}

// mergeFieldsRequiredWins merges incoming into base; a name present in
// both keeps incoming's schema but is mandatory if either side was (spec
// §8.1: "required names remain mandatory if required in any member").
func mergeFieldsRequiredWins(base, incoming []schema.ObjectField) []schema.ObjectField {
	index := make(map[string]int, len(base))
	for i, f := range base {
		index[f.Label.Name] = i
	}
	for _, f := range incoming {
		if i, exists := index[f.Label.Name]; exists {
			mandatory := base[i].Label.Mandatory || f.Label.Mandatory
			base[i] = schema.ObjectField{
				Label:  schema.ObjectLabel{Name: f.Label.Name, Mandatory: mandatory},
				Schema: f.Schema,
			}
			continue
		}
		index[f.Label.Name] = len(base)
		base = append(base, f)
	}
	return base
}

// mergeObjectFields merges overlay onto base with overlay winning outright
// on a name collision (spec §4.8.6 step 3: properties wins over allOf).
func mergeObjectFields(base, overlay []schema.ObjectField) []schema.ObjectField {
	index := make(map[string]int, len(base))
	for i, f := range base {
		index[f.Label.Name] = i
	}
	for _, f := range overlay {
		if i, exists := index[f.Label.Name]; exists {
			base[i] = f
			continue
		}
		index[f.Label.Name] = len(base)
		base = append(base, f)
	}
	return base
}
