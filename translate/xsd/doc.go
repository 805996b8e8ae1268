// Package xsd implements the XSD 1.0 importer named in spec §4.9 (design
// sketch depth): no third-party example repo in the pack wires a generic
// XSD/XML-schema library, so this importer walks the schema with the
// standard library's encoding/xml, the same tool the one XSD-adjacent pack
// example (xsdschematransform) itself reaches for.
package xsd
