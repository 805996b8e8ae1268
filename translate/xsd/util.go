package xsd

import (
	"sort"
	"strconv"

	"github.com/veltrix/schemaforge/schema"
)

func indexSegment(i int) string {
	return strconv.Itoa(i)
}

// padTuple brings a translated tuple up to the IR's minimum arity of 2
// (spec §9 "Empty collections"), matching translate/jsonschema's padTuple.
func padTuple(elements []schema.Schema) []schema.Schema {
	for len(elements) < 2 {
		elements = append(elements, schema.Fail())
	}
	return elements
}

func sortedComplexTypeNames(m map[string]xsdComplexType) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func sortedSimpleTypeNames(m map[string]xsdSimpleType) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
