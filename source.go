package convscan

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register the PNG decoder for LoadImage
	"os"

	"golang.org/x/image/draw"
)

// DefaultPatternSize is the side length of the synthetic fallback input.
const DefaultPatternSize = 192

// SyntheticPattern returns an opaque grayscale w x h raster where each pixel
// is ((x*7) XOR (y*11)) & 255. It stands in for a real image so the engine
// runs without external assets.
func SyntheticPattern(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(((x * 7) ^ (y * 11)) & 255)
			i := y*img.Stride + x*4
			img.Pix[i] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = 255
		}
	}
	return img
}

// LoadImage decodes a PNG file into an RGBA raster anchored at (0, 0).
func LoadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts img to an *image.RGBA whose bounds start at (0, 0).
// An RGBA already anchored at the origin is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}

// FitImage downsizes img with nearest-neighbor sampling so neither side
// exceeds maxSide, preserving aspect ratio. Smaller images are converted
// but not enlarged. maxSide <= 0 disables the limit.
func FitImage(img image.Image, maxSide int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return ToRGBA(img)
	}
	if w >= h {
		h = max(h*maxSide/w, 1)
		w = maxSide
	} else {
		w = max(w*maxSide/h, 1)
		h = maxSide
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Rect, image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, b, draw.Over, nil)
	return dst
}
