package twx

import (
	"image"

	"github.com/relicpack/relic/bcn"
)

// Decode converts the texture's payload to an RGBA pixel rectangle
// suitable for PNG export. BC3/BC3Variant payloads decode only the
// level-0 (largest) mip slice.
func (t *Texture) Decode() (*image.RGBA, error) {
	switch t.Format {
	case FormatRGB:
		return decodeRGB(t.Payload, t.Width, t.Height), nil
	case FormatRGBA:
		return decodeRGBA(t.Payload, t.Width, t.Height), nil
	case FormatBC1:
		return bcn.DecodeBC1(t.Payload, t.Width, t.Height)
	case FormatBC3, FormatBC3Variant:
		level0 := t.Payload[:bc3Level0Size(t.Width, t.Height)]
		return bcn.DecodeBC3(level0, t.Width, t.Height)
	default:
		return nil, Error("unsupported data_format")
	}
}

func decodeRGB(buf []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		r, g, b := buf[i*3], buf[i*3+1], buf[i*3+2]
		img.Pix[i*4+0] = r
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = 0xFF
	}
	return img
}

func decodeRGBA(buf []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, buf[:w*h*4])
	return img
}
