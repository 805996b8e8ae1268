package syntax

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/veltrix/schemaforge/schema"
)

// rawEdge is one parsed bound edge before its literal text is converted to
// int64 or *big.Rat by the caller.
type rawEdge struct {
	op  schema.BoundOp
	val string
}

// boundMeaning maps a relational operator symbol and which side of the
// keyword the value fell on to (isMin, BoundOp). The two forms
// "KEY OP V" and "V OP KEY" express the same bound with mirrored operators
// (spec §4.3.4's shared bound-constraint grammar).
func boundMeaning(opSym string, valueBeforeKey bool) (isMin bool, op schema.BoundOp) {
	if !valueBeforeKey {
		switch opSym {
		case ">=":
			return true, schema.MinInclusive
		case ">":
			return true, schema.MinExclusive
		case "<=":
			return false, schema.MaxInclusive
		case "<":
			return false, schema.MaxExclusive
		default: // "=="
			return true, schema.Exact
		}
	}
	switch opSym {
	case "<=":
		return true, schema.MinInclusive
	case "<":
		return true, schema.MinExclusive
	case ">=":
		return false, schema.MaxInclusive
	case ">":
		return false, schema.MaxExclusive
	default: // "=="
		return true, schema.Exact
	}
}

var sizeUnits = map[string]int64{
	"bytes": 1,
	"bits":  1, // documented alias for bytes, DESIGN.md Open Questions
	"KB":    1024,
	"MB":    1024 * 1024,
	"GB":    1024 * 1024 * 1024,
}

func (p *Parser) isRelSymbol(tok Token) bool {
	if tok.Kind != TSymbol {
		return false
	}
	switch tok.Text {
	case "<", "<=", ">", ">=", "==":
		return true
	}
	return false
}

func (p *Parser) parseRelSymbol() (string, error) {
	tok := p.peek()
	if !p.isRelSymbol(tok) {
		return "", p.errorf("expected a relational operator, got %q", tok.Text)
	}
	p.next()
	return tok.Text, nil
}

// parseBoundValue parses a (possibly negative) decimal literal, and when
// withUnit is true also consumes an optional trailing unit keyword
// (bytes|bits|KB|MB|GB), returning the value already multiplied into bytes.
func (p *Parser) parseBoundValue(withUnit bool) (string, error) {
	tok := p.peek()
	if tok.Kind != TNumber {
		return "", p.errorf("expected a number, got %q", tok.Text)
	}
	p.next()
	text := tok.Text
	if withUnit {
		if unitTok := p.peek(); unitTok.Kind == TIdent {
			mult, known := sizeUnits[unitTok.Text]
			if known {
				p.next()
				n, err := strconv.ParseInt(text, 10, 64)
				if err != nil {
					return "", p.errorf("invalid integer %q: %v", text, err)
				}
				return strconv.FormatInt(n*mult, 10), nil
			}
		}
	}
	return text, nil
}

// parseBoundExpr parses one of the three shapes of spec §4.3.4's bound
// grammar: "KEY OP V", "V OP KEY", or "V1 OP1 KEY OP2 V2".
func (p *Parser) parseBoundExpr(keyword string, withUnit bool) (min, max *rawEdge, err error) {
	if p.peekIsIdent(keyword) {
		p.next()
		opSym, err := p.parseRelSymbol()
		if err != nil {
			return nil, nil, err
		}
		val, err := p.parseBoundValue(withUnit)
		if err != nil {
			return nil, nil, err
		}
		isMin, op := boundMeaning(opSym, false)
		edge := &rawEdge{op: op, val: val}
		if isMin {
			return edge, nil, nil
		}
		return nil, edge, nil
	}

	val1, err := p.parseBoundValue(withUnit)
	if err != nil {
		return nil, nil, err
	}
	opSym1, err := p.parseRelSymbol()
	if err != nil {
		return nil, nil, err
	}
	if !p.peekIsIdent(keyword) {
		return nil, nil, p.errorf("expected keyword %q in bound expression", keyword)
	}
	p.next()
	isMin1, op1 := boundMeaning(opSym1, true)
	edge1 := &rawEdge{op: op1, val: val1}

	if p.isRelSymbol(p.peek()) {
		opSym2, err := p.parseRelSymbol()
		if err != nil {
			return nil, nil, err
		}
		val2, err := p.parseBoundValue(withUnit)
		if err != nil {
			return nil, nil, err
		}
		isMin2, op2 := boundMeaning(opSym2, false)
		edge2 := &rawEdge{op: op2, val: val2}
		if isMin1 {
			min = edge1
		} else {
			max = edge1
		}
		if isMin2 {
			if min != nil {
				return nil, nil, p.errorf("duplicate lower bound on %q", keyword)
			}
			min = edge2
		} else {
			if max != nil {
				return nil, nil, p.errorf("duplicate upper bound on %q", keyword)
			}
			max = edge2
		}
		return min, max, nil
	}

	if isMin1 {
		return edge1, nil, nil
	}
	return nil, edge1, nil
}

func edgeToInt(e *rawEdge) (*schema.Bound[int64], error) {
	if e == nil {
		return nil, nil
	}
	n, err := strconv.ParseInt(e.val, 10, 64)
	if err != nil {
		return nil, err
	}
	return &schema.Bound[int64]{Op: e.op, Value: n}, nil
}

func edgeToDecimal(e *rawEdge) (*schema.Bound[*big.Rat], error) {
	if e == nil {
		return nil, nil
	}
	r, ok := new(big.Rat).SetString(e.val)
	if !ok {
		return nil, fmt.Errorf("invalid decimal literal %q", e.val)
	}
	return &schema.Bound[*big.Rat]{Op: e.op, Value: r}, nil
}

// parseIntRange parses a bound expression into a canonical IntRange
// (Exact canonicalized into Min, matching BoundedRange.Merge's rule).
func (p *Parser) parseIntRange(keyword string, withUnit bool) (*schema.IntRange, error) {
	minEdge, maxEdge, err := p.parseBoundExpr(keyword, withUnit)
	if err != nil {
		return nil, err
	}
	min, err := edgeToInt(minEdge)
	if err != nil {
		return nil, err
	}
	max, err := edgeToInt(maxEdge)
	if err != nil {
		return nil, err
	}
	if min != nil && min.Op == schema.Exact {
		max = nil
	}
	return &schema.IntRange{Min: min, Max: max}, nil
}

func (p *Parser) parseDecimalRange(keyword string) (*schema.DecimalRange, error) {
	minEdge, maxEdge, err := p.parseBoundExpr(keyword, false)
	if err != nil {
		return nil, err
	}
	min, err := edgeToDecimal(minEdge)
	if err != nil {
		return nil, err
	}
	max, err := edgeToDecimal(maxEdge)
	if err != nil {
		return nil, err
	}
	if min != nil && min.Op == schema.Exact {
		max = nil
	}
	return &schema.DecimalRange{Min: min, Max: max}, nil
}
