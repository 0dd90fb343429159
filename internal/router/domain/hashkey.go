package domain

import (
	"fmt"
	"math/big"

	"lukechampine.com/uint128"
)

// MaxHashKey is the top of the 128-bit hash-key space.
var MaxHashKey = uint128.Max

// ParseHashKey parses the decimal rendering the directory service uses
// for hash-key range boundaries.
func ParseHashKey(s string) (uint128.Uint128, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return uint128.Zero, fmt.Errorf("malformed hash key %q", s)
	}
	if n.Sign() < 0 || n.BitLen() > 128 {
		return uint128.Zero, fmt.Errorf("hash key %q outside the 128-bit space", s)
	}
	return uint128.FromBig(n), nil
}

// FormatHashKey renders a hash key in the directory's decimal form.
func FormatHashKey(h uint128.Uint128) string {
	return h.String()
}
