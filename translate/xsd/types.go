package xsd

import "encoding/xml"

// The structs below cover the XSD 1.0 subset spec §4.9 names: element,
// attribute, complexType (sequence/choice/all, simpleContent extension),
// simpleType restriction with its common facets. xs:redefine, xs:notation,
// and the full xs:group/xs:attributeGroup reference machinery are out of
// scope for this design-sketch translator.
type xsdSchema struct {
	XMLName      xml.Name         `xml:"schema"`
	Elements     []xsdElement     `xml:"element"`
	ComplexTypes []xsdComplexType `xml:"complexType"`
	SimpleTypes  []xsdSimpleType  `xml:"simpleType"`
}

type xsdElement struct {
	Name        string          `xml:"name,attr"`
	Ref         string          `xml:"ref,attr"`
	Type        string          `xml:"type,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	ComplexType *xsdComplexType `xml:"complexType"`
	SimpleType  *xsdSimpleType  `xml:"simpleType"`
}

type xsdComplexType struct {
	Name          string            `xml:"name,attr"`
	Sequence      *xsdGroup         `xml:"sequence"`
	Choice        *xsdGroup         `xml:"choice"`
	All           *xsdGroup         `xml:"all"`
	Attributes    []xsdAttribute    `xml:"attribute"`
	SimpleContent *xsdSimpleContent `xml:"simpleContent"`
}

type xsdGroup struct {
	Elements []xsdElement `xml:"element"`
}

type xsdAttribute struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
	Use  string `xml:"use,attr"`
}

type xsdSimpleContent struct {
	Extension *xsdExtension `xml:"extension"`
}

type xsdExtension struct {
	Base       string         `xml:"base,attr"`
	Attributes []xsdAttribute `xml:"attribute"`
}

type xsdSimpleType struct {
	Name        string          `xml:"name,attr"`
	Restriction *xsdRestriction `xml:"restriction"`
}

type xsdRestriction struct {
	Base         string     `xml:"base,attr"`
	Enumeration  []xsdFacet `xml:"enumeration"`
	MinInclusive *xsdFacet  `xml:"minInclusive"`
	MaxInclusive *xsdFacet  `xml:"maxInclusive"`
	MinLength    *xsdFacet  `xml:"minLength"`
	MaxLength    *xsdFacet  `xml:"maxLength"`
	Pattern      *xsdFacet  `xml:"pattern"`
}

type xsdFacet struct {
	Value string `xml:"value,attr"`
}

func (e xsdElement) maxOccursUnbounded() bool {
	return e.MaxOccurs == "unbounded"
}

func (e xsdElement) repeated() bool {
	if e.maxOccursUnbounded() {
		return true
	}
	if e.MaxOccurs == "" {
		return false
	}
	return e.MaxOccurs != "1" && e.MaxOccurs != "0"
}

func (e xsdElement) mandatory() bool {
	return e.MinOccurs != "0"
}
