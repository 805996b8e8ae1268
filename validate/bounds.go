package validate

import (
	"fmt"
	"math/big"

	"github.com/veltrix/schemaforge/schema"
)

// checkIntRange reports whether n satisfies every set side of r. An empty
// range (both sides nil) always satisfies. A range whose concrete min/max
// values are mutually contradictory (min > max) is simply never satisfied
// (spec §3.4: "validator treats the range as empty" — here read as
// "the range rejects everything", since nothing can be both >= min and <= max
// when min > max).
func checkIntRange(r *schema.IntRange, n int64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && !boundSatisfiedInt(r.Min, n, true) {
		return false
	}
	if r.Max != nil && !boundSatisfiedInt(r.Max, n, false) {
		return false
	}
	return true
}

func boundSatisfiedInt(b *schema.Bound[int64], n int64, lowSide bool) bool {
	switch b.Op {
	case schema.Exact:
		return n == b.Value
	case schema.MinInclusive:
		return n >= b.Value
	case schema.MinExclusive:
		return n > b.Value
	case schema.MaxInclusive:
		return n <= b.Value
	case schema.MaxExclusive:
		return n < b.Value
	default:
		return lowSide
	}
}

func checkDecimalRange(r *schema.DecimalRange, n *big.Rat) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && !boundSatisfiedDecimal(r.Min, n) {
		return false
	}
	if r.Max != nil && !boundSatisfiedDecimal(r.Max, n) {
		return false
	}
	return true
}

func boundSatisfiedDecimal(b *schema.Bound[*big.Rat], n *big.Rat) bool {
	cmp := n.Cmp(b.Value)
	switch b.Op {
	case schema.Exact:
		return cmp == 0
	case schema.MinInclusive:
		return cmp >= 0
	case schema.MinExclusive:
		return cmp > 0
	case schema.MaxInclusive:
		return cmp <= 0
	case schema.MaxExclusive:
		return cmp < 0
	default:
		return false
	}
}

func describeIntRange(label string, r *schema.IntRange) string {
	if r == nil {
		return ""
	}
	out := ""
	if r.Min != nil {
		out += fmt.Sprintf("%s %s %d", label, r.Min.Op, r.Min.Value)
	}
	if r.Max != nil {
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s %s %d", label, r.Max.Op, r.Max.Value)
	}
	return out
}
