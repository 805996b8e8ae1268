package jsonschema

// rootDefinitions collects the root document's `$defs` (2020-12) and
// `definitions` (Draft-07) maps into one name-keyed table of raw,
// not-yet-translated JSON, the shape translate.Context.Definitions expects.
// `$defs` wins on a name collision between the two.
func rootDefinitions(raw any) map[string]any {
	out := map[string]any{}
	obj, ok := raw.(map[string]any)
	if !ok {
		return out
	}
	collectDefs(out, obj["definitions"])
	collectDefs(out, obj["$defs"])
	return out
}

func collectDefs(out map[string]any, v any) {
	defs, ok := v.(map[string]any)
	if !ok {
		return
	}
	for name, def := range defs {
		out[name] = def
	}
}
