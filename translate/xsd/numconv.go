package xsd

import "math/big"

func parseRat(s string) (*big.Rat, bool) {
	if s == "" {
		return nil, false
	}
	return new(big.Rat).SetString(s)
}

func parseInt(s string) (int64, bool) {
	r, ok := parseRat(s)
	if !ok || !r.IsInt() {
		return 0, false
	}
	return r.Num().Int64(), true
}
