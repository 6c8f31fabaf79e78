package archive

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/relicpack/relic/twx"
)

// ConvertTWXToPNG decodes a TWX file to a PNG, for callers that want to
// inspect or batch-export textures without running a full unpack.
func ConvertTWXToPNG(twxPath, pngPath string) error {
	data, err := os.ReadFile(twxPath)
	if err != nil {
		return fmt.Errorf("archive: reading %s: %w", twxPath, err)
	}
	tex, err := twx.Parse(data)
	if err != nil {
		return fmt.Errorf("archive: parsing %s: %w", twxPath, err)
	}
	img, err := tex.Decode()
	if err != nil {
		return fmt.Errorf("archive: decoding %s: %w", twxPath, err)
	}

	out, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("archive: creating %s: %w", pngPath, err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("archive: encoding %s: %w", pngPath, err)
	}
	return nil
}

// ConvertPNGToTWX re-encodes a PNG over an existing TWX's payload,
// preserving the TWX's original 48-byte header (and, for BC3 textures,
// its existing mip-chain depth) and writing the result to twxOutPath.
func ConvertPNGToTWX(pngPath, twxInPath, twxOutPath string) error {
	twxData, err := os.ReadFile(twxInPath)
	if err != nil {
		return fmt.Errorf("archive: reading %s: %w", twxInPath, err)
	}
	tex, err := twx.Parse(twxData)
	if err != nil {
		return fmt.Errorf("archive: parsing %s: %w", twxInPath, err)
	}

	f, err := os.Open(pngPath)
	if err != nil {
		return fmt.Errorf("archive: reading %s: %w", pngPath, err)
	}
	defer f.Close()
	src, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("archive: decoding %s: %w", pngPath, err)
	}

	rgba := toRGBA(src)
	if err := tex.Encode(rgba); err != nil {
		return fmt.Errorf("archive: re-encoding %s: %w", twxInPath, err)
	}

	if err := os.WriteFile(twxOutPath, tex.Bytes(), 0o644); err != nil {
		return fmt.Errorf("archive: writing %s: %w", twxOutPath, err)
	}
	return nil
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}
	return dst
}
