package convscan

import (
	"fmt"
	"math"
)

// Kernel is a square matrix of convolution weights stored row-major.
// The zero value is not usable; build one with NewKernel or ZeroKernel.
type Kernel struct {
	size    int
	weights []float64
}

// NewKernel copies rows into a Kernel. rows must be non-empty, square, and
// of odd size.
func NewKernel(rows [][]float64) (Kernel, error) {
	k := len(rows)
	if k == 0 {
		return Kernel{}, fmt.Errorf("%w: empty matrix", ErrInvalidKernel)
	}
	if k%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: size %d is even", ErrInvalidKernel, k)
	}
	weights := make([]float64, 0, k*k)
	for i, row := range rows {
		if len(row) != k {
			return Kernel{}, fmt.Errorf("%w: row %d has %d weights, want %d",
				ErrInvalidKernel, i, len(row), k)
		}
		weights = append(weights, row...)
	}
	return Kernel{size: k, weights: weights}, nil
}

// MustKernel is like NewKernel but panics on error. Intended for literals.
func MustKernel(rows [][]float64) Kernel {
	k, err := NewKernel(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// ZeroKernel returns a k x k kernel of zero weights.
func ZeroKernel(k int) (Kernel, error) {
	if k <= 0 || k%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: size %d must be odd and >= 1", ErrInvalidKernel, k)
	}
	return Kernel{size: k, weights: make([]float64, k*k)}, nil
}

// Size returns k.
func (k Kernel) Size() int { return k.size }

// At returns the weight at (row, col). Panics when out of range.
func (k Kernel) At(row, col int) float64 {
	return k.weights[row*k.size+col]
}

// SumAbs returns the sum of absolute weights.
func (k Kernel) SumAbs() float64 {
	var s float64
	for _, w := range k.weights {
		s += math.Abs(w)
	}
	return s
}

// Rows returns a copy of the weights as a row slice.
func (k Kernel) Rows() [][]float64 {
	rows := make([][]float64, k.size)
	for r := range rows {
		rows[r] = append([]float64(nil), k.weights[r*k.size:(r+1)*k.size]...)
	}
	return rows
}

// Clone returns a deep copy.
func (k Kernel) Clone() Kernel {
	return Kernel{size: k.size, weights: append([]float64(nil), k.weights...)}
}

// with returns a copy with (row, col) set to w.
func (k Kernel) with(row, col int, w float64) (Kernel, error) {
	if row < 0 || row >= k.size || col < 0 || col >= k.size {
		return Kernel{}, fmt.Errorf("%w: cell (%d, %d) outside %dx%d", ErrInvalidKernel, row, col, k.size, k.size)
	}
	c := k.Clone()
	c.weights[row*k.size+col] = w
	return c, nil
}
