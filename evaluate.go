package convscan

import (
	"image"
	"math"
)

// BT.709 luma weights. Output compatibility depends on these exact values.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luminance reduces RGB to a single intensity using BT.709 weights.
func Luminance(r, g, b float64) float64 {
	return lumaR*r + lumaG*g + lumaB*b
}

// Evaluate computes the filtered intensity of the window whose top-left
// corner sits at origin (input coordinates relative to src.Rect.Min).
// Cells outside src contribute black, in every padding mode.
func Evaluate(src *image.RGBA, k Kernel, origin image.Point, mode Normalization) uint8 {
	return evaluate(src, k, k.SumAbs(), origin, mode)
}

func evaluate(src *image.RGBA, k Kernel, sumAbs float64, origin image.Point, mode Normalization) uint8 {
	b := src.Rect
	w, h := b.Dx(), b.Dy()
	var accR, accG, accB float64
	for ky := 0; ky < k.size; ky++ {
		y := origin.Y + ky
		if y < 0 || y >= h {
			continue
		}
		row := k.weights[ky*k.size : (ky+1)*k.size]
		for kx, wgt := range row {
			x := origin.X + kx
			if x < 0 || x >= w {
				continue
			}
			i := y*src.Stride + x*4
			accR += wgt * float64(src.Pix[i])
			accG += wgt * float64(src.Pix[i+1])
			accB += wgt * float64(src.Pix[i+2])
		}
	}
	return mode.Apply(Luminance(accR, accG, accB), sumAbs)
}

// Apply maps a raw luminance response to [0, 255]. sumAbs is the kernel's
// sum of absolute weights, used by NormSignedMap.
func (m Normalization) Apply(lum, sumAbs float64) uint8 {
	switch m {
	case NormSignedMap:
		bound := 255 * sumAbs
		if bound == 0 {
			return 128
		}
		return clamp255(roundHalfUp((lum + bound) / (2 * bound) * 255))
	case NormAbsClip:
		return clamp255(roundHalfUp(math.Min(math.Abs(lum), 255)))
	default:
		return clamp255(roundHalfUp(lum))
	}
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clamp255(v float64) uint8 {
	switch {
	case v != v, v <= 0: // NaN
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
