package bcn

import (
	"encoding/binary"
	"image"
)

const bc1BlockBytes = 8

// DecodeBC1 decodes a BC1 (DXT1) payload into an RGBA image. Blocks
// whose color0 <= color1 use the format's alpha-aware 3-color mode:
// the fourth palette entry is fully transparent black rather than an
// interpolated color.
func DecodeBC1(payload []byte, w, h int) (img *image.RGBA, err error) {
	defer errRecover(&err)
	if e := checkDims(w, h); e != nil {
		return nil, e
	}
	blocksW, blocksH := w/blockDim, h/blockDim
	want := blocksW * blocksH * bc1BlockBytes
	if len(payload) != want {
		return nil, Error("BC1 payload size mismatch")
	}

	img = newRGBA(w, h)
	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			idx := by*blocksW + bx
			block := payload[idx*bc1BlockBytes : idx*bc1BlockBytes+bc1BlockBytes]
			decodeBC1Block(img, bx*blockDim, by*blockDim, block)
		}
	}
	return img, nil
}

func decodeBC1Block(img *image.RGBA, ox, oy int, block []byte) {
	c0v := binary.LittleEndian.Uint16(block[0:2])
	c1v := binary.LittleEndian.Uint16(block[2:4])
	c0 := unpack565(c0v)
	c1 := unpack565(c1v)

	var palette [4]rgb565
	var hasAlpha [4]bool
	palette[0], palette[1] = c0, c1
	if c0v > c1v {
		palette[2] = lerpColor(c0, c1, 1, 3)
		palette[3] = lerpColor(c0, c1, 2, 3)
	} else {
		palette[2] = lerpColor(c0, c1, 1, 2)
		palette[3] = rgb565{}
		hasAlpha[3] = true
	}

	bits := binary.LittleEndian.Uint32(block[4:8])
	for py := 0; py < blockDim; py++ {
		for pxi := 0; pxi < blockDim; pxi++ {
			i := py*blockDim + pxi
			sel := (bits >> uint(2*i)) & 0x3
			col := palette[sel]
			a := uint8(0xFF)
			if hasAlpha[sel] {
				a = 0
			}
			off := img.PixOffset(ox+pxi, oy+py)
			img.Pix[off+0] = uint8(col.r)
			img.Pix[off+1] = uint8(col.g)
			img.Pix[off+2] = uint8(col.b)
			img.Pix[off+3] = a
		}
	}
}

// EncodeBC1 encodes an RGBA image as a BC1 (DXT1) payload. The encoder
// always emits 4-color-mode blocks (color0 > color1): alpha is ignored,
// matching the opaque textures TWX stores as BC1 in practice.
func EncodeBC1(src *image.RGBA, opts ...Option) (out []byte, err error) {
	defer errRecover(&err)
	cfg := newConfig(opts)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if e := checkDims(w, h); e != nil {
		return nil, e
	}
	blocksW, blocksH := w/blockDim, h/blockDim
	out = make([]byte, 0, blocksW*blocksH*bc1BlockBytes)

	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			px := readBlock(src, b.Min.X+bx*blockDim, b.Min.Y+by*blockDim)
			out = append(out, encodeBC1Block(px, cfg)...)
		}
	}
	return out, nil
}

func readBlock(src *image.RGBA, ox, oy int) [16][3]uint8 {
	var px [16][3]uint8
	for py := 0; py < blockDim; py++ {
		for pxi := 0; pxi < blockDim; pxi++ {
			off := src.PixOffset(ox+pxi, oy+py)
			px[py*blockDim+pxi] = [3]uint8{src.Pix[off], src.Pix[off+1], src.Pix[off+2]}
		}
	}
	return px
}

func encodeBC1Block(px [16][3]uint8, cfg Config) []byte {
	c0, c1 := fitEndpoints(px, cfg.refineIterations())
	c0v, c1v := pack565(c0), pack565(c1)
	if c0v <= c1v {
		// Force 4-color mode: this encoder never emits punch-through
		// alpha blocks.
		if c0v == c1v {
			if c1v == 0xFFFF {
				c1v--
			} else {
				c0v++
			}
		} else {
			c0v, c1v = c1v, c0v
		}
	}
	p0, p1 := unpack565(c0v), unpack565(c1v)
	palette := [4]rgb565{p0, p1, lerpColor(p0, p1, 1, 3), lerpColor(p0, p1, 2, 3)}

	var bits uint32
	for i, p := range px {
		best, bestD := 0, dist2(palette[0], p[0], p[1], p[2])
		for k := 1; k < 4; k++ {
			if d := dist2(palette[k], p[0], p[1], p[2]); d < bestD {
				best, bestD = k, d
			}
		}
		bits |= uint32(best) << uint(2*i)
	}

	block := make([]byte, bc1BlockBytes)
	binary.LittleEndian.PutUint16(block[0:2], c0v)
	binary.LittleEndian.PutUint16(block[2:4], c1v)
	binary.LittleEndian.PutUint32(block[4:8], bits)
	return block
}
