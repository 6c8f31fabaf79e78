// Package twx implements the TWX texture container: a 48-byte header
// wrapping raw RGB/RGBA pixel data or a BC1/BC3 (S3TC) block-compressed
// mip chain.
package twx

import (
	"encoding/binary"
	"fmt"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "twx: " + string(e) }

// Format identifies a TWX pixel payload layout.
type Format uint16

const (
	FormatRGB        Format = 7
	FormatRGBA       Format = 8
	FormatBC1        Format = 9
	FormatBC3        Format = 11
	FormatBC3Variant Format = 13
)

func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	case FormatBC1:
		return "BC1"
	case FormatBC3, FormatBC3Variant:
		return "BC3"
	default:
		return fmt.Sprintf("Format(%d)", uint16(f))
	}
}

const (
	headerSize = 0x30
	magic      = 0x30585754 // "TWX0" little-endian
)

// FormatSizeError reports a payload whose length doesn't match its
// format's declared geometry.
type FormatSizeError struct {
	Format   Format
	Actual   int
	Expected int
}

func (e *FormatSizeError) Error() string {
	return fmt.Sprintf("twx: invalid payload size for %s: got %d, want %d", e.Format, e.Actual, e.Expected)
}

// Texture is a parsed TWX container: its original 48-byte header
// (preserved verbatim across re-encoding) plus the decoded geometry
// and payload.
type Texture struct {
	header      [headerSize]byte
	Width       int
	Height      int
	Format      Format
	Payload     []byte
	MaxMipLevel int
}

// Parse validates and parses a TWX byte stream.
func Parse(data []byte) (*Texture, error) {
	if len(data) < headerSize {
		return nil, Error("file too small to be a TWX container")
	}
	if got := binary.LittleEndian.Uint32(data[0:4]); got != magic {
		return nil, Error(fmt.Sprintf("bad magic number: %08x", got))
	}

	t := &Texture{
		Width:  int(binary.LittleEndian.Uint16(data[8:10])),
		Height: int(binary.LittleEndian.Uint16(data[10:12])),
		Format: Format(binary.LittleEndian.Uint16(data[12:14])),
	}
	copy(t.header[:], data[:headerSize])
	t.Payload = append([]byte(nil), data[headerSize:]...)

	level, err := checkSize(t.Payload, t.Width, t.Height, t.Format)
	if err != nil {
		return nil, err
	}
	t.MaxMipLevel = level
	return t, nil
}

// Bytes rewrites the texture: the original 48-byte header (including
// its opaque trailing bytes) followed by the current payload.
func (t *Texture) Bytes() []byte {
	out := make([]byte, 0, headerSize+len(t.Payload))
	out = append(out, t.header[:]...)
	out = append(out, t.Payload...)
	return out
}

// checkSize validates payload against the geometry format implies,
// returning the inferred max mip level for BC3/BC3Variant formats.
func checkSize(payload []byte, width, height int, format Format) (int, error) {
	switch format {
	case FormatRGB:
		want := width * height * 3
		if len(payload) != want {
			return 0, &FormatSizeError{format, len(payload), want}
		}
		return 0, nil
	case FormatRGBA:
		want := width * height * 4
		if len(payload) != want {
			return 0, &FormatSizeError{format, len(payload), want}
		}
		return 0, nil
	case FormatBC1:
		want := (width / 4) * (height / 4) * 8
		if len(payload) != want {
			return 0, &FormatSizeError{format, len(payload), want}
		}
		return 0, nil
	case FormatBC3, FormatBC3Variant:
		level := 0
		w, h := width, height
		expected := (w / 4) * (h / 4) * 16
		for len(payload) >= expected {
			if len(payload) == expected {
				return level, nil
			}
			level++
			w = max(1, w/2)
			h = max(1, h/2)
			add := (w / 4) * (h / 4) * 16
			if add == 0 {
				break
			}
			expected += add
		}
		return 0, &FormatSizeError{format, len(payload), expected}
	default:
		return 0, Error(fmt.Sprintf("unsupported data_format %d", uint16(format)))
	}
}

// bc3Level0Size returns the byte size of the first (largest) mip level
// of a BC3 payload.
func bc3Level0Size(width, height int) int {
	return (width / 4) * (height / 4) * 16
}
