// Package testutil is a collection of testing helper methods.
package testutil

import (
	"encoding/hex"
)

// MustDecodeHex must decode a hexadecimal string or else panics.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
