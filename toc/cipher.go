package toc

import "github.com/relicpack/relic/internal"

// keyLen is the size of the header's name field, reused as cipher key
// material. The first keyLen bytes of a TOC buffer are never
// encrypted.
const keyLen = 16

// Decrypt reverses Encrypt in place and also returns data. If data's
// first byte is zero or its length is at most keyLen, data is returned
// unchanged: these buffers carry no key material to decrypt with.
func Decrypt(data []byte) []byte {
	if len(data) == 0 || data[0] == 0 || len(data) <= keyLen {
		return data
	}
	key := data[:keyLen]
	for p := keyLen; p < len(data); p++ {
		i := (p - keyLen) % keyLen
		swapped := internal.NibbleSwapLUT[data[p]]
		notVal := ^swapped
		data[p] = notVal - key[i]
	}
	return data
}

// Encrypt reverses Decrypt in place and also returns data, under the
// same short-circuit rule.
func Encrypt(data []byte) []byte {
	if len(data) == 0 || data[0] == 0 || len(data) <= keyLen {
		return data
	}
	var key [keyLen]byte
	copy(key[:], data[:keyLen])
	for p := keyLen; p < len(data); p++ {
		i := (p - keyLen) % keyLen
		tmp := data[p] + key[i]
		x := ^tmp
		data[p] = internal.NibbleSwapLUT[x]
	}
	return data
}
