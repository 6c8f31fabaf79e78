// Package toc implements the archive's table-of-contents: a per-block
// substitution cipher (cipher.go), the fixed-record FileEntry layout
// (entry.go), and the TOC model that parses, mutates, and serializes
// the whole directory.
package toc

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "toc: " + string(e) }

// TOC is a parsed table-of-contents: a header record (whose only
// meaningful field is FileCount) and the N entries that follow it.
// The header and Entries[0] are distinct records — the header is not
// re-used as the first entry.
type TOC struct {
	Header  FileEntry
	Entries []FileEntry
}

// Parse decrypts and parses an INFO buffer. data is consumed in place
// by the cipher; callers that need the original bytes should pass a
// copy.
func Parse(data []byte) (*TOC, error) {
	plain := Decrypt(data)
	return ParsePlain(plain)
}

// ParsePlain parses an already-decrypted INFO buffer.
func ParsePlain(data []byte) (*TOC, error) {
	if len(data) < EntrySize {
		return nil, Error("buffer shorter than one header record")
	}
	header := parseEntry(data[:EntrySize])
	n := int(header.FileCount)

	want := EntrySize + n*EntrySize
	if len(data) < want {
		return nil, Error("buffer too short for declared file_count")
	}

	entries := make([]FileEntry, n)
	for i := 0; i < n; i++ {
		off := EntrySize + i*EntrySize
		entries[i] = parseEntry(data[off : off+EntrySize])
	}
	return &TOC{Header: header, Entries: entries}, nil
}

// PlainBytes serializes the TOC to its unencrypted on-disk form:
// header followed by all entries, field order as in entry.go.
func (t *TOC) PlainBytes() []byte {
	buf := make([]byte, 0, EntrySize*(1+len(t.Entries)))
	buf = t.Header.appendBytes(buf)
	for _, e := range t.Entries {
		buf = e.appendBytes(buf)
	}
	return buf
}

// Bytes serializes and encrypts the TOC to its on-disk INFO form.
func (t *TOC) Bytes() []byte {
	return Encrypt(t.PlainBytes())
}

// RecalculateOffsets sweeps entries in declared order, assigning each
// non-zero-block entry the next contiguous block range. Zero-block
// entries are left untouched.
func (t *TOC) RecalculateOffsets() {
	var cursor uint32
	for i := range t.Entries {
		e := &t.Entries[i]
		if e.BlockCount == 0 {
			continue
		}
		e.BlockOffset = cursor
		cursor += e.BlockCount
	}
}
