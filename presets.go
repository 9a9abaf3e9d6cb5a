package convscan

import "fmt"

// Preset is a named kernel offered by the viewer.
type Preset struct {
	Name   string
	Kernel Kernel
}

// Preset names.
const (
	PresetIdentity  = "Identity"
	PresetGauss3    = "Blur 3x3 (Gauss)"
	PresetSharpen   = "Sharpen"
	PresetLaplacian = "Edge (Laplacian)"
	PresetSobelX    = "Sobel X"
	PresetSobelY    = "Sobel Y"
	PresetBox5      = "Box 5x5"
)

var presets = []Preset{
	{PresetIdentity, MustKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})},
	{PresetGauss3, MustKernel([][]float64{
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
		{2.0 / 16, 4.0 / 16, 2.0 / 16},
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
	})},
	{PresetSharpen, MustKernel([][]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	})},
	{PresetLaplacian, MustKernel([][]float64{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	})},
	{PresetSobelX, MustKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})},
	{PresetSobelY, MustKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})},
	{PresetBox5, boxKernel(5)},
}

func boxKernel(k int) Kernel {
	w := 1 / float64(k*k)
	rows := make([][]float64, k)
	for r := range rows {
		rows[r] = make([]float64, k)
		for c := range rows[r] {
			rows[r][c] = w
		}
	}
	return MustKernel(rows)
}

// Presets returns the built-in kernels in display order. Kernels are copies.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = Preset{Name: p.Name, Kernel: p.Kernel.Clone()}
	}
	return out
}

// LookupPreset returns a copy of the named preset kernel.
func LookupPreset(name string) (Kernel, error) {
	for _, p := range presets {
		if p.Name == name {
			return p.Kernel.Clone(), nil
		}
	}
	return Kernel{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
