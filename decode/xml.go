package decode

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/veltrix/schemaforge/value"
)

// XMLDecoder implements §6.2's XML rules: attributes and child elements
// merge into one map; repeated children become lists; text content is
// keyed as "_text"; an element with no attributes and no children
// collapses straight to a Text value.
type XMLDecoder struct{}

func (XMLDecoder) Decode(text string) (value.Value, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return value.Value{}, fmt.Errorf("%w: no root element found", ErrMalformedInput)
		}
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			v, err := decodeXMLElement(dec, start)
			if err != nil {
				return value.Value{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
			}
			return v, nil
		}
	}
}

type xmlChild struct {
	name string
	val  value.Value
}

func decodeXMLElement(dec *xml.Decoder, start xml.StartElement) (value.Value, error) {
	obj := value.NewObject()
	for _, attr := range start.Attr {
		obj.Set("@"+attr.Name.Local, value.Text(attr.Value))
	}

	var text strings.Builder
	var children []xmlChild

	for {
		tok, err := dec.Token()
		if err != nil {
			return value.Value{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeXMLElement(dec, t)
			if err != nil {
				return value.Value{}, err
			}
			children = append(children, xmlChild{name: t.Name.Local, val: child})
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			return finishXMLElement(obj, strings.TrimSpace(text.String()), children, len(start.Attr) > 0), nil
		}
	}
}

func finishXMLElement(obj *value.Object, text string, children []xmlChild, hasAttrs bool) value.Value {
	if len(children) == 0 && !hasAttrs {
		return value.Text(text)
	}

	counts := map[string]int{}
	for _, c := range children {
		counts[c.name]++
	}
	var order []string
	grouped := map[string][]value.Value{}
	for _, c := range children {
		if _, seen := grouped[c.name]; !seen {
			order = append(order, c.name)
		}
		grouped[c.name] = append(grouped[c.name], c.val)
	}
	for _, name := range order {
		vals := grouped[name]
		if counts[name] > 1 {
			obj.Set(name, value.List(vals))
		} else {
			obj.Set(name, vals[0])
		}
	}
	if text != "" {
		obj.Set("_text", value.Text(text))
	}
	return value.FromObject(obj)
}
