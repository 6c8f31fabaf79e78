package archive

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// VerificationError names the entry whose payload fingerprint changed
// across a pack round trip.
type VerificationError struct {
	Entry string
	Want  uint64
	Got   uint64
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("archive: payload %q fingerprint mismatch: want %x, got %x", e.Entry, e.Want, e.Got)
}

// Fingerprint hashes a payload so it can be compared cheaply across a
// pack/unpack round trip without keeping the full bytes around.
func Fingerprint(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}

// Verify compares the payload each entry resolves to in a against the
// supplied fingerprints (as produced by Fingerprint, keyed by entry
// name), reporting the first mismatch found.
func Verify(a *Archive, want map[string]uint64) error {
	for _, e := range a.TOC.Entries {
		expect, ok := want[e.Name]
		if !ok {
			continue
		}
		data, err := a.ReadPayload(e)
		if err != nil {
			return err
		}
		got := Fingerprint(data)
		if got != expect {
			return &VerificationError{Entry: e.Name, Want: expect, Got: got}
		}
	}
	return nil
}

// FingerprintAll computes Fingerprint for every entry's payload,
// keyed by entry name. Useful to snapshot a blob's contents before a
// pack cycle so Verify can confirm the rebuild reproduced it.
func FingerprintAll(a *Archive) (map[string]uint64, error) {
	out := make(map[string]uint64, len(a.TOC.Entries))
	for _, e := range a.TOC.Entries {
		data, err := a.ReadPayload(e)
		if err != nil {
			return nil, err
		}
		out[e.Name] = Fingerprint(data)
	}
	return out, nil
}
