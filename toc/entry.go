package toc

import (
	"bytes"
	"encoding/binary"
)

// EntrySize is the fixed on-disk size of a FileEntry record.
const EntrySize = 0x30

// BlockSize is the alignment unit for payloads within the data blob.
const BlockSize = 0x800

// FileEntry describes one archive asset: its name, its payload size,
// and where that payload lives in the data blob in 2048-byte blocks.
//
// FileCount is only meaningful on the header entry, where it records
// the total number of entries that follow.
type FileEntry struct {
	Name        string
	Size        uint32
	BlockOffset uint32
	BlockCount  uint32
	FileCount   uint32
}

// parseEntry reads a 48-byte record from buf, field order:
// name[32], size, block_offset, block_count, file_count.
func parseEntry(buf []byte) FileEntry {
	name := bytes.TrimRight(buf[0x00:0x20], "\x00")
	return FileEntry{
		Name:        string(name),
		Size:        binary.LittleEndian.Uint32(buf[0x20:0x24]),
		BlockOffset: binary.LittleEndian.Uint32(buf[0x24:0x28]),
		BlockCount:  binary.LittleEndian.Uint32(buf[0x28:0x2C]),
		FileCount:   binary.LittleEndian.Uint32(buf[0x2C:0x30]),
	}
}

// appendBytes encodes the entry in its on-disk layout, appending to
// buf and returning the result.
func (e FileEntry) appendBytes(buf []byte) []byte {
	var rec [EntrySize]byte
	copy(rec[0x00:0x20], e.Name)
	binary.LittleEndian.PutUint32(rec[0x20:0x24], e.Size)
	binary.LittleEndian.PutUint32(rec[0x24:0x28], e.BlockOffset)
	binary.LittleEndian.PutUint32(rec[0x28:0x2C], e.BlockCount)
	binary.LittleEndian.PutUint32(rec[0x2C:0x30], e.FileCount)
	return append(buf, rec[:]...)
}

// UpdateInfo sets Size and BlockCount from payload, and resets
// BlockOffset to zero so a subsequent RecalculateOffsets assigns it.
func (e *FileEntry) UpdateInfo(payload []byte) {
	e.Size = uint32(len(payload))
	e.BlockCount = uint32((len(payload) + BlockSize - 1) / BlockSize)
	e.BlockOffset = 0
}
