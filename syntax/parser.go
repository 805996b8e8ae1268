package syntax

import (
	"fmt"

	"github.com/veltrix/schemaforge/schema"
)

// Parser is a hand-written recursive-descent parser over the token stream
// produced by Lexer, implementing spec §4.3's grammar. It short-circuits on
// the first syntax error (spec §7).
type Parser struct {
	toks []Token
	pos  int
}

// Parse tokenizes and parses a complete schemaforge document.
func Parse(text string) (schema.ParsedSchema, error) {
	p := &Parser{toks: NewLexer(text).Tokens()}
	return p.parseDocument()
}

// ParseItem parses a single standalone item, e.g. for tests or for
// embedding one schema expression inside a larger host document.
func ParseItem(text string) (schema.Schema, error) {
	p := &Parser{toks: NewLexer(text).Tokens()}
	item, err := p.parseItem()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != TEOF {
		return nil, p.errorf("unexpected trailing token %q", p.peek().Text)
	}
	return item, nil
}

func (p *Parser) peek() Token {
	return p.toks[p.pos]
}

func (p *Parser) next() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) peekIsSymbol(text string) bool {
	t := p.peek()
	return t.Kind == TSymbol && t.Text == text
}

func (p *Parser) peekIsIdent(text string) bool {
	t := p.peek()
	return t.Kind == TIdent && t.Text == text
}

func (p *Parser) expectSymbol(text string) error {
	if !p.peekIsSymbol(text) {
		return p.errorf("expected %q, got %q", text, p.peek().Text)
	}
	p.next()
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.peek().Line, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) skipBlankLines() {
	for p.peek().Kind == TNewline {
		p.next()
	}
}

func (p *Parser) collectPrecedingDoc() string {
	var lines []string
	for p.peek().Kind == TDocPreceding {
		lines = append(lines, p.peek().Text)
		p.next()
		if p.peek().Kind == TNewline {
			p.next()
		}
	}
	if len(lines) == 0 {
		return ""
	}
	joined := lines[0]
	for _, l := range lines[1:] {
		joined += "\n" + l
	}
	return joined
}

func (p *Parser) wrapDoc(doc string, item schema.Schema) schema.Schema {
	if doc == "" {
		return item
	}
	return schema.Documented(doc, item)
}

func (p *Parser) consumeTrailingDoc(item schema.Schema) schema.Schema {
	if p.peek().Kind == TDocTrailing {
		text := p.next().Text
		return p.wrapDoc(text, item)
	}
	return item
}

func (p *Parser) expectStatementEnd() error {
	if p.peek().Kind == TNewline {
		p.next()
		return nil
	}
	if p.peek().Kind == TEOF {
		return nil
	}
	return p.errorf("expected end of statement, got %q", p.peek().Text)
}

func (p *Parser) parseDocument() (schema.ParsedSchema, error) {
	doc := schema.ParsedSchema{Definitions: map[string]schema.Schema{}, Imports: map[string]string{}}
	for {
		p.skipBlankLines()
		if p.peek().Kind == TEOF {
			return doc, nil
		}
		docComment := p.collectPrecedingDoc()
		p.skipBlankLines()
		if p.peek().Kind == TEOF {
			return doc, nil
		}

		if p.peekIsSymbol("=") {
			p.next()
			item, err := p.parseItem()
			if err != nil {
				return doc, err
			}
			item = p.wrapDoc(docComment, item)
			item = p.consumeTrailingDoc(item)
			doc.Root = item
			if err := p.expectStatementEnd(); err != nil {
				return doc, err
			}
			continue
		}

		deprecated := false
		if p.peekIsSymbol("@") {
			p.next()
			if !p.peekIsIdent("deprecated") {
				return doc, p.errorf("expected 'deprecated' after '@'")
			}
			p.next()
			deprecated = true
			p.skipBlankLines()
		}

		if p.peek().Kind != TIdent {
			return doc, p.errorf("expected a definition label, got %q", p.peek().Text)
		}
		label := p.next().Text

		if p.peekIsSymbol("=>") {
			p.next()
			if !p.peekIsIdent("import") {
				return doc, p.errorf("expected 'import' after '=>'")
			}
			p.next()
			if p.peek().Kind != TString {
				return doc, p.errorf("expected an import path string")
			}
			path := p.next().Text
			doc.Imports[label] = path
			if err := p.expectStatementEnd(); err != nil {
				return doc, err
			}
			continue
		}

		if err := p.expectSymbol("="); err != nil {
			return doc, err
		}
		item, err := p.parseItem()
		if err != nil {
			return doc, err
		}
		item = p.wrapDoc(docComment, item)
		if deprecated {
			item = schema.Deprecated(item)
		}
		item = p.consumeTrailingDoc(item)
		doc.Definitions[label] = item
		if err := p.expectStatementEnd(); err != nil {
			return doc, err
		}
	}
}

// parseItem parses "alternatives | listOfValues | tuple | primary"
// (spec §4.3.3): a suffixed primary optionally followed by unparenthesized
// "|"-separated alternatives.
func (p *Parser) parseItem() (schema.Schema, error) {
	first, err := p.parseSuffixedPrimary()
	if err != nil {
		return nil, err
	}
	if !p.peekIsSymbol("|") {
		return first, nil
	}
	options := []schema.Schema{first}
	for p.peekIsSymbol("|") {
		p.next()
		opt, err := p.parseSuffixedPrimary()
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	// spec §4.3.7: an alternatives list where every option is GivenText
	// canonicalizes to Enum(values), e.g. "red" | "green" | "blue".
	return schema.Normalize(schema.Alternatives(options)), nil
}

func (p *Parser) parseSuffixedPrimary() (schema.Schema, error) {
	prim, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peekIsSymbol("*") {
		p.next()
		return schema.ListOf(prim, schema.ListConstraints{}), nil
	}
	if p.peekIsSymbol("+") {
		p.next()
		one := int64(1)
		cs := schema.ListConstraints{Size: &schema.IntRange{Min: &schema.Bound[int64]{Op: schema.MinInclusive, Value: one}}}
		if p.peekIsSymbol("[") {
			extra, err := p.parseListConstraintsBlock()
			if err != nil {
				return nil, err
			}
			cs = mergeListConstraints(cs, extra)
		}
		return schema.ListOf(prim, cs), nil
	}
	return prim, nil
}

func mergeListConstraints(base, extra schema.ListConstraints) schema.ListConstraints {
	out := base
	if extra.Size != nil {
		if out.Size != nil {
			merged := out.Size.Merge(*extra.Size)
			out.Size = &merged
		} else {
			out.Size = extra.Size
		}
	}
	out.Unique = append(out.Unique, extra.Unique...)
	return out
}

func (p *Parser) parsePrimary() (schema.Schema, error) {
	tok := p.peek()
	switch {
	case tok.Kind == TString:
		p.next()
		return schema.GivenText(tok.Text), nil
	case p.peekIsSymbol("{"):
		return p.parseBraces()
	case p.peekIsSymbol("("):
		return p.parseParens()
	case tok.Kind == TIdent:
		switch tok.Text {
		case "any":
			p.next()
			return schema.Any(), nil
		case "fail":
			p.next()
			return schema.Fail(), nil
		case "boolean":
			return p.parseBoolean()
		case "text":
			return p.parseText()
		case "number":
			return p.parseNumber()
		case "binary":
			return p.parseBinary()
		case "time":
			return p.parseTime()
		default:
			return p.parseRefLike()
		}
	}
	return nil, p.errorf("unexpected token %q", tok.Text)
}

func (p *Parser) parseRefLike() (schema.Schema, error) {
	name := p.next().Text
	if p.peekIsSymbol(".") {
		p.next()
		if p.peek().Kind != TIdent {
			return nil, p.errorf("expected identifier after '.'")
		}
		sub := p.next().Text
		return schema.ScopedRef(name, sub), nil
	}
	return schema.Ref(name), nil
}

func (p *Parser) parseBoolean() (schema.Schema, error) {
	p.next() // "boolean"
	var def *bool
	if p.peekIsSymbol("=") {
		p.next()
		switch {
		case p.peekIsIdent("true"):
			p.next()
			v := true
			def = &v
		case p.peekIsIdent("false"):
			p.next()
			v := false
			def = &v
		default:
			return nil, p.errorf("expected true or false after boolean default")
		}
	}
	return schema.Boolean(def), nil
}

func (p *Parser) parseText() (schema.Schema, error) {
	p.next() // "text"
	var cs schema.TextConstraints
	if p.peekIsSymbol("[") {
		var err error
		cs, err = p.parseTextConstraintsBlock()
		if err != nil {
			return nil, err
		}
	}
	var def *string
	if p.peekIsSymbol("=") {
		p.next()
		if p.peek().Kind != TString {
			return nil, p.errorf("expected string literal as text default")
		}
		v := p.next().Text
		def = &v
	}
	return schema.Text(cs, def), nil
}

func (p *Parser) parseTextConstraintsBlock() (schema.TextConstraints, error) {
	var cs schema.TextConstraints
	p.next() // '['
	for {
		p.skipBlankLines()
		switch {
		case p.peekIsIdent("length"):
			r, err := p.parseIntRange("length", false)
			if err != nil {
				return cs, err
			}
			cs.Size = r
		case p.peekIsIdent("regex"):
			p.next()
			if err := p.expectSymbol("="); err != nil {
				return cs, err
			}
			if p.peek().Kind != TString {
				return cs, p.errorf("expected string literal for regex")
			}
			v := p.next().Text
			cs.Regex = &v
		case p.peekIsIdent("format"):
			p.next()
			if err := p.expectSymbol("="); err != nil {
				return cs, err
			}
			if p.peek().Kind != TString {
				return cs, p.errorf("expected string literal for format")
			}
			v := p.next().Text
			cs.Format = &v
		default:
			return cs, p.errorf("unexpected token %q in text constraints", p.peek().Text)
		}
		p.skipBlankLines()
		if p.peekIsSymbol(",") {
			p.next()
			continue
		}
		break
	}
	p.skipBlankLines()
	if err := p.expectSymbol("]"); err != nil {
		return cs, err
	}
	return cs, nil
}

func (p *Parser) parseNumber() (schema.Schema, error) {
	p.next() // "number"
	var cs schema.NumericConstraints
	if p.peekIsSymbol("[") {
		var err error
		cs, err = p.parseNumericConstraintsBlock()
		if err != nil {
			return nil, err
		}
	}
	var def *string
	if p.peekIsSymbol("=") {
		p.next()
		if p.peek().Kind != TNumber {
			return nil, p.errorf("expected number literal as default")
		}
		v := p.next().Text
		def = &v
	}
	return schema.Numeric(cs, def), nil
}

func (p *Parser) parseNumericConstraintsBlock() (schema.NumericConstraints, error) {
	var cs schema.NumericConstraints
	p.next() // '['
	for {
		p.skipBlankLines()
		switch {
		case p.peekIsIdent("integer"):
			p.next()
			cs.Integer = true
		case p.peekIsIdent("value"):
			r, err := p.parseDecimalRange("value")
			if err != nil {
				return cs, err
			}
			cs.Value = r
		default:
			return cs, p.errorf("unexpected token %q in number constraints", p.peek().Text)
		}
		p.skipBlankLines()
		if p.peekIsSymbol(",") {
			p.next()
			continue
		}
		break
	}
	p.skipBlankLines()
	if err := p.expectSymbol("]"); err != nil {
		return cs, err
	}
	return cs, nil
}

var binaryEncodings = map[string]schema.BinaryEncoding{
	"hex":     schema.EncodingHex,
	"base64":  schema.EncodingBase64,
	"base32":  schema.EncodingBase32,
	"base58":  schema.EncodingBase58,
	"ascii85": schema.EncodingAscii85,
}

func (p *Parser) parseBinary() (schema.Schema, error) {
	p.next() // "binary"
	var cs schema.BinaryConstraints
	if p.peekIsSymbol("[") {
		var err error
		cs, err = p.parseBinaryConstraintsBlock()
		if err != nil {
			return nil, err
		}
	}
	return schema.Binary(cs), nil
}

func (p *Parser) parseBinaryConstraintsBlock() (schema.BinaryConstraints, error) {
	var cs schema.BinaryConstraints
	p.next() // '['
	for {
		p.skipBlankLines()
		switch {
		case p.peekIsIdent("size"):
			r, err := p.parseIntRange("size", true)
			if err != nil {
				return cs, err
			}
			cs.Size = r
		case p.peekIsIdent("encoding"):
			p.next()
			if err := p.expectSymbol("="); err != nil {
				return cs, err
			}
			if p.peek().Kind != TIdent {
				return cs, p.errorf("expected an encoding name")
			}
			name := p.next().Text
			enc, ok := binaryEncodings[name]
			if !ok {
				return cs, p.errorf("unknown encoding %q", name)
			}
			cs.Encoding = enc
		default:
			return cs, p.errorf("unexpected token %q in binary constraints", p.peek().Text)
		}
		p.skipBlankLines()
		if p.peekIsSymbol(",") {
			p.next()
			continue
		}
		break
	}
	p.skipBlankLines()
	if err := p.expectSymbol("]"); err != nil {
		return cs, err
	}
	return cs, nil
}

func (p *Parser) parseTime() (schema.Schema, error) {
	p.next() // "time"
	var constraints []schema.TimeConstraint
	if p.peekIsSymbol("[") {
		p.next()
		for {
			p.skipBlankLines()
			if !p.peekIsIdent("format") {
				return nil, p.errorf("expected 'format' in time constraints")
			}
			p.next()
			if err := p.expectSymbol("="); err != nil {
				return nil, err
			}
			switch p.peek().Kind {
			case TString:
				pattern := p.next().Text
				constraints = append(constraints, schema.TimeConstraint{Pattern: pattern})
			case TIdent:
				name := p.next().Text
				constraints = append(constraints, schema.TimeConstraint{Named: name})
			default:
				return nil, p.errorf("expected a format name or pattern string")
			}
			p.skipBlankLines()
			if p.peekIsSymbol(",") {
				p.next()
				continue
			}
			break
		}
		p.skipBlankLines()
		if err := p.expectSymbol("]"); err != nil {
			return nil, err
		}
	}
	return schema.Time(constraints), nil
}

func (p *Parser) parseListConstraintsBlock() (schema.ListConstraints, error) {
	var cs schema.ListConstraints
	p.next() // '['
	for {
		p.skipBlankLines()
		switch {
		case p.peekIsIdent("size"):
			r, err := p.parseIntRange("size", false)
			if err != nil {
				return cs, err
			}
			cs.Size = r
		case p.peekIsIdent("unique"):
			p.next()
			if p.peekIsSymbol("=") {
				p.next()
				if p.peekIsSymbol("(") {
					p.next()
					var fields []string
					for {
						p.skipBlankLines()
						if p.peek().Kind != TIdent {
							return cs, p.errorf("expected field name in composite uniqueness")
						}
						fields = append(fields, p.next().Text)
						p.skipBlankLines()
						if p.peekIsSymbol(",") {
							p.next()
							continue
						}
						break
					}
					p.skipBlankLines()
					if err := p.expectSymbol(")"); err != nil {
						return cs, err
					}
					cs.Unique = append(cs.Unique, schema.Uniqueness{ByFields: fields})
				} else if p.peek().Kind == TIdent {
					field := p.next().Text
					cs.Unique = append(cs.Unique, schema.Uniqueness{ByFields: []string{field}})
				} else {
					return cs, p.errorf("expected a field or field list after 'unique ='")
				}
			} else {
				cs.Unique = append(cs.Unique, schema.Uniqueness{})
			}
		default:
			return cs, p.errorf("unexpected token %q in list constraints", p.peek().Text)
		}
		p.skipBlankLines()
		if p.peekIsSymbol(",") {
			p.next()
			continue
		}
		break
	}
	p.skipBlankLines()
	if err := p.expectSymbol("]"); err != nil {
		return cs, err
	}
	return cs, nil
}

func (p *Parser) parseBraces() (schema.Schema, error) {
	p.next() // '{'
	p.skipBlankLines()
	if p.peekIsSymbol("}") {
		p.next()
		return schema.ObjectOf(nil), nil
	}
	if p.peekIsSymbol("...") || p.peekIsSymbol("…") {
		p.next()
		if err := p.expectSymbol(":"); err != nil {
			return nil, err
		}
		valueSchema, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		p.skipBlankLines()
		if err := p.expectSymbol("}"); err != nil {
			return nil, err
		}
		return schema.MapOf(valueSchema), nil
	}

	var fields []schema.ObjectField
	for {
		p.skipBlankLines()
		doc := p.collectPrecedingDoc()
		p.skipBlankLines()
		if p.peek().Kind != TIdent {
			return nil, p.errorf("expected a field name, got %q", p.peek().Text)
		}
		name := p.next().Text
		mandatory := true
		if p.peekIsSymbol("?") {
			p.next()
			mandatory = false
		}
		if err := p.expectSymbol(":"); err != nil {
			return nil, err
		}
		fieldSchema, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		fieldSchema = p.wrapDoc(doc, fieldSchema)
		fieldSchema = p.consumeTrailingDoc(fieldSchema)

		label := schema.ObjectLabel{Name: name, Mandatory: mandatory}
		fields = append(fields, schema.ObjectField{Label: label, Schema: fieldSchema})

		p.skipBlankLines()
		if p.peekIsSymbol(",") {
			p.next()
			p.skipBlankLines()
			if p.peekIsSymbol("}") {
				p.next()
				break
			}
			continue
		}
		if p.peekIsSymbol("}") {
			p.next()
			break
		}
		return nil, p.errorf("expected ',' or '}' in object, got %q", p.peek().Text)
	}
	return schema.ObjectOf(fields), nil
}

func (p *Parser) parseParens() (schema.Schema, error) {
	p.next() // '('
	p.skipBlankLines()
	first, err := p.parseItem()
	if err != nil {
		return nil, err
	}
	p.skipBlankLines()
	if p.peekIsSymbol(",") {
		elems := []schema.Schema{first}
		for p.peekIsSymbol(",") {
			p.next()
			p.skipBlankLines()
			elem, err := p.parseItem()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			p.skipBlankLines()
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return schema.TupleOf(elems), nil
	}
	if p.peekIsSymbol("|") {
		opts := []schema.Schema{first}
		for p.peekIsSymbol("|") {
			p.next()
			p.skipBlankLines()
			opt, err := p.parseItem()
			if err != nil {
				return nil, err
			}
			opts = append(opts, opt)
			p.skipBlankLines()
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return schema.Alternatives(opts), nil
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return first, nil
}
