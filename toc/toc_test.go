package toc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/relicpack/relic/internal/testutil"
)

func TestCipherShortCircuit(t *testing.T) {
	zero := []byte{0x00, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	got := append([]byte(nil), zero...)
	assert.Equal(t, zero, Encrypt(got))
	got = append([]byte(nil), zero...)
	assert.Equal(t, zero, Decrypt(got))

	short := make([]byte, 16)
	short[0] = 1
	got = append([]byte(nil), short...)
	assert.Equal(t, short, Encrypt(got))
}

func TestCipherFixedVector(t *testing.T) {
	key := testutil.MustDecodeHex("0102030405060708090a0b0c0d0e0f10")
	data := append(append([]byte(nil), key...), 0x00)

	enc := Encrypt(data)
	assert.Equal(t, byte(0xEF), enc[16])
}

func TestCipherInvolution(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i*7 + 3)
	}
	data[0] = 1 // must be nonzero to avoid the short-circuit

	enc := Encrypt(append([]byte(nil), data...))
	dec := Decrypt(append([]byte(nil), enc...))
	assert.Equal(t, data, dec)

	dec2 := Decrypt(append([]byte(nil), data...))
	enc2 := Encrypt(append([]byte(nil), dec2...))
	assert.Equal(t, data, enc2)
}

func TestRecalculateOffsets(t *testing.T) {
	toc := &TOC{
		Entries: []FileEntry{
			{BlockCount: 3},
			{BlockCount: 0, BlockOffset: 99},
			{BlockCount: 5},
			{BlockCount: 2},
		},
	}
	toc.RecalculateOffsets()

	got := make([]uint32, len(toc.Entries))
	for i, e := range toc.Entries {
		got[i] = e.BlockOffset
	}
	want := []uint32{0, 99, 3, 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSerializeRoundTrip(t *testing.T) {
	orig := &TOC{
		Header: FileEntry{FileCount: 2, Name: "INFO"},
		Entries: []FileEntry{
			{Name: "a.twx", Size: 100, BlockOffset: 0, BlockCount: 1},
			{Name: "b.twx", Size: 5000, BlockOffset: 1, BlockCount: 3},
		},
	}
	encrypted := orig.Bytes()

	got, err := Parse(append([]byte(nil), encrypted...))
	assert.NoError(t, err)

	if diff := cmp.Diff(orig, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, encrypted, got.Bytes())
}

func TestRecalculateOffsetsRandomEntries(t *testing.T) {
	r := testutil.NewRand(7)
	specs := testutil.RandomEntries(r, 50)

	entries := make([]FileEntry, len(specs))
	for i, s := range specs {
		entries[i] = FileEntry{Name: s.Name, Size: s.Size}
		entries[i].UpdateInfo(make([]byte, s.Size))
		if r.Intn(5) == 0 {
			entries[i].BlockCount = 0 // exercise the "leave alone" branch
		}
	}
	tc := &TOC{Entries: entries}
	tc.RecalculateOffsets()

	var cursor uint32
	for i, e := range tc.Entries {
		if e.BlockCount == 0 {
			continue
		}
		if e.BlockOffset != cursor {
			t.Fatalf("entry %d: offset = %d, want %d", i, e.BlockOffset, cursor)
		}
		cursor += e.BlockCount
	}
}

func TestUpdateInfo(t *testing.T) {
	var e FileEntry
	e.BlockOffset = 42
	e.UpdateInfo(make([]byte, 2049))
	assert.Equal(t, uint32(2049), e.Size)
	assert.Equal(t, uint32(2), e.BlockCount)
	assert.Equal(t, uint32(0), e.BlockOffset)
}
