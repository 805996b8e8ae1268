package validate

import (
	"encoding/ascii85"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/veltrix/schemaforge/schema"
)

// decodeBinary decodes s per enc, as described in spec §4.5. It is
// unexported and used within the validator: for a Value::Text input to a
// Binary schema with an encoding constraint, and for canonicalizing
// Binary fields before a ByFields uniqueness key is built.
func decodeBinary(enc schema.BinaryEncoding, s string) ([]byte, error) {
	switch enc {
	case schema.EncodingHex:
		if len(s)%2 != 0 {
			return nil, fmt.Errorf("odd-length hex string")
		}
		return hex.DecodeString(strings.ToLower(s))
	case schema.EncodingBase64:
		return base64.StdEncoding.DecodeString(s)
	case schema.EncodingBase32:
		padded := s
		if m := len(padded) % 8; m != 0 {
			padded += strings.Repeat("=", 8-m)
		}
		return base32.StdEncoding.DecodeString(padded)
	case schema.EncodingBase58:
		return decodeBase58(s)
	case schema.EncodingAscii85:
		return decodeAscii85(s)
	default:
		return []byte(s), nil
	}
}

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// decodeBase58 implements the Bitcoin base58 alphabet (no 0, O, I, l).
func decodeBase58(s string) ([]byte, error) {
	var index [256]int8
	for i := range index {
		index[i] = -1
	}
	for i, c := range base58Alphabet {
		index[c] = int8(i)
	}

	zeros := 0
	for zeros < len(s) && s[zeros] == '1' {
		zeros++
	}

	num := new(big.Int)
	base := big.NewInt(58)
	for i := 0; i < len(s); i++ {
		digit := index[s[i]]
		if digit < 0 {
			return nil, fmt.Errorf("invalid base58 character %q", s[i])
		}
		num.Mul(num, base)
		num.Add(num, big.NewInt(int64(digit)))
	}

	decoded := num.Bytes()
	out := make([]byte, zeros+len(decoded))
	copy(out[zeros:], decoded)
	return out, nil
}

// decodeAscii85 supports the optional <~ ~> delimiters and the 'z' shorthand
// for four zero bytes, both handled natively by encoding/ascii85.
func decodeAscii85(s string) ([]byte, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(s, "<~"), "~>")
	dst := make([]byte, 4*len(trimmed)) // each input character yields at most four bytes ('z')
	n, _, err := ascii85.Decode(dst, []byte(trimmed), true)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
