package envphys

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns n evenly spaced samples over the closed interval
// [lo, hi]. The first and last samples are exactly lo and hi.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("sample count %d, need at least 2: %w", n, ErrInvalidDomain)
	}
	if err := finite("lower bound", lo); err != nil {
		return nil, err
	}
	if err := finite("upper bound", hi); err != nil {
		return nil, err
	}
	s := floats.Span(make([]float64, n), lo, hi)
	s[n-1] = hi
	return s, nil
}

// Meshgrid builds plotting coordinates from two axes.
//
// Args:
//
//	x: column coordinates (len nx)
//	y: row coordinates (len ny)
//
// Returns:
//
//	X: ny x nx, X[i][j] = x[j]
//	Y: ny x nx, Y[i][j] = y[i]
func Meshgrid(x, y []float64) (X, Y *mat.Dense, err error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, nil, fmt.Errorf("meshgrid of %d x %d points: %w", len(y), len(x), ErrInvalidDomain)
	}

	X = mat.NewDense(len(y), len(x), nil)
	Y = mat.NewDense(len(y), len(x), nil)
	for i := 0; i < len(y); i++ {
		X.SetRow(i, x)
		yrow := Y.RawRowView(i)
		for j := range yrow {
			yrow[j] = y[i]
		}
	}
	return X, Y, nil
}
