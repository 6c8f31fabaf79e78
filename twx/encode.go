package twx

import (
	"image"

	"github.com/relicpack/relic/bcn"
)

// Encode replaces the texture's payload from an RGBA source image. The
// target format comes from the texture's existing header, not from the
// source image. For BC3/BC3Variant, a full mip chain matching the
// texture's current MaxMipLevel is generated by repeated downsampling.
func (t *Texture) Encode(src *image.RGBA, opts ...bcn.Option) error {
	switch t.Format {
	case FormatRGB:
		t.Payload = encodeRGB(src)
	case FormatRGBA:
		t.Payload = encodeRGBA(src)
	case FormatBC1:
		payload, err := bcn.EncodeBC1(src, opts...)
		if err != nil {
			return err
		}
		t.Payload = payload
	case FormatBC3, FormatBC3Variant:
		payload, err := t.encodeBC3Chain(src, opts...)
		if err != nil {
			return err
		}
		t.Payload = payload
	default:
		return Error("unsupported data_format")
	}

	level, err := checkSize(t.Payload, t.Width, t.Height, t.Format)
	if err != nil {
		return err
	}
	t.MaxMipLevel = level
	return nil
}

func (t *Texture) encodeBC3Chain(src *image.RGBA, opts ...bcn.Option) ([]byte, error) {
	var out []byte
	level := src
	for i := 0; i <= t.MaxMipLevel; i++ {
		enc, err := bcn.EncodeBC3(level, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
		if i < t.MaxMipLevel {
			level = downsample(level)
		}
	}
	return out, nil
}

func encodeRGB(src *image.RGBA) []byte {
	b := src.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			out = append(out, src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		}
	}
	return out
}

func encodeRGBA(src *image.RGBA) []byte {
	b := src.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			out = append(out, src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3])
		}
	}
	return out
}
