package bcn

// rgb565 holds an unpacked RGB565 color, kept in float64 for the
// least-squares endpoint refinement in the encoder.
type rgb565 struct {
	r, g, b float64
}

func pack565(c rgb565) uint16 {
	r := clamp5(c.r)
	g := clamp6(c.g)
	b := clamp5(c.b)
	return uint16(r)<<11 | uint16(g)<<5 | uint16(b)
}

func unpack565(v uint16) rgb565 {
	r5 := uint8(v>>11) & 0x1F
	g6 := uint8(v>>5) & 0x3F
	b5 := uint8(v) & 0x1F
	return rgb565{
		r: float64((r5 << 3) | (r5 >> 2)),
		g: float64((g6 << 2) | (g6 >> 4)),
		b: float64((b5 << 3) | (b5 >> 2)),
	}
}

func clamp5(x float64) uint8 {
	v := int(x/255*31 + 0.5)
	return clampU8(v, 0, 31)
}

func clamp6(x float64) uint8 {
	v := int(x/255*63 + 0.5)
	return clampU8(v, 0, 63)
}

func clampU8(v, lo, hi int) uint8 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return uint8(v)
}

func lerpColor(a, b rgb565, num, den int) rgb565 {
	t := float64(num) / float64(den)
	return rgb565{
		r: a.r + (b.r-a.r)*t,
		g: a.g + (b.g-a.g)*t,
		b: a.b + (b.b-a.b)*t,
	}
}

func dist2(c rgb565, r, g, b uint8) float64 {
	dr := c.r - float64(r)
	dg := c.g - float64(g)
	db := c.b - float64(b)
	return dr*dr + dg*dg + db*db
}
