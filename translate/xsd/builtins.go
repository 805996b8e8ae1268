package xsd

import (
	"strings"

	"github.com/veltrix/schemaforge/schema"
)

// localName strips an XML namespace prefix ("xs:string" -> "string").
func localName(qname string) string {
	_, local, found := strings.Cut(qname, ":")
	if !found {
		return qname
	}
	return local
}

// builtinType maps an XSD 1.0 built-in simple type to its IR equivalent.
// Types whose semantics don't transfer (xs:ID, xs:IDREF, xs:anyURI, ...)
// still map to a plausible IR shape but record a Loss at the call site.
func builtinType(name string) (schema.Schema, bool, bool) {
	integer := func() (schema.Schema, bool, bool) {
		return schema.Numeric(schema.NumericConstraints{Integer: true}, nil), true, false
	}
	decimal := func() (schema.Schema, bool, bool) {
		return schema.Numeric(schema.NumericConstraints{}, nil), true, false
	}
	text := func() (schema.Schema, bool, bool) {
		return schema.Text(schema.TextConstraints{}, nil), true, false
	}

	switch name {
	case "string", "normalizedString", "token", "language", "NMTOKEN", "Name", "NCName":
		return text()
	case "int", "integer", "long", "short", "byte", "unsignedInt", "unsignedLong",
		"unsignedShort", "unsignedByte", "positiveInteger", "negativeInteger",
		"nonNegativeInteger", "nonPositiveInteger":
		return integer()
	case "decimal", "float", "double":
		return decimal()
	case "boolean":
		return schema.Boolean(nil), true, false
	case "dateTime":
		return schema.Time([]schema.TimeConstraint{{Named: "rfc3339"}}), true, false
	case "date":
		return schema.Time([]schema.TimeConstraint{{Named: "iso8601-date"}}), true, false
	case "time":
		return schema.Time([]schema.TimeConstraint{{Named: "iso8601-time"}}), true, false
	case "base64Binary":
		return schema.Binary(schema.BinaryConstraints{Encoding: schema.EncodingBase64}), true, false
	case "hexBinary":
		return schema.Binary(schema.BinaryConstraints{Encoding: schema.EncodingHex}), true, false
	case "ID", "IDREF", "IDREFS", "ENTITY", "ENTITIES", "anyURI", "QName", "NOTATION":
		s, ok, _ := text()
		return s, ok, true
	case "anyType", "anySimpleType":
		return schema.Any(), true, false
	}
	return nil, false, false
}
