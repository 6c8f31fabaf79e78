package twx

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// downsample halves img's dimensions (floored, minimum 1) using a
// high-quality resampler, the Go ecosystem's closest stand-in for the
// Lanczos filter the original texture tool uses between mip levels.
func downsample(img image.Image) *image.RGBA {
	b := img.Bounds()
	w := max(1, b.Dx()/2)
	h := max(1, b.Dy()/2)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
