package validate

import (
	"time"

	"github.com/veltrix/schemaforge/schema"
)

// namedTimeLayout maps a TimeConstraint.Named value to a Go reference
// layout. rfc3339 uses time.RFC3339; the iso8601 family uses the layouts
// closest to what implementations in the wild accept.
func namedTimeLayout(name string) (string, bool) {
	switch name {
	case "rfc3339":
		return time.RFC3339, true
	case "iso8601", "iso8601-datetime":
		return "2006-01-02T15:04:05Z07:00", true
	case "iso8601-date":
		return "2006-01-02", true
	case "iso8601-time":
		return "15:04:05", true
	default:
		return "", false
	}
}

// matchesTimeConstraint reports whether s parses under constraint c, either
// a named format or a custom Go reference-time pattern.
func matchesTimeConstraint(c schema.TimeConstraint, s string) bool {
	layout := c.Pattern
	if c.Named != "" {
		named, ok := namedTimeLayout(c.Named)
		if !ok {
			return false
		}
		layout = named
	}
	_, err := time.Parse(layout, s)
	return err == nil
}
