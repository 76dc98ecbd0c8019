package envphys

import (
	"errors"
	"fmt"
	"math"
)

// Failure kinds returned by the models. Errors are wrapped with context;
// test for a kind with errors.Is.
var (
	ErrInvalidDomain   = errors.New("envphys: input outside valid domain")
	ErrNumericOverflow = errors.New("envphys: numeric overflow")
	ErrShapeMismatch   = errors.New("envphys: length mismatch")
)

// positive reports an ErrInvalidDomain unless v is finite and > 0.
func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s must be positive, got %g: %w", name, v, ErrInvalidDomain)
	}
	return nil
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %g: %w", name, v, ErrInvalidDomain)
	}
	return nil
}

// checkedExp returns e^x, or ErrNumericOverflow when the result is not
// representable as a float64.
func checkedExp(x float64) (float64, error) {
	v := math.Exp(x)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("exp(%g): %w", x, ErrNumericOverflow)
	}
	return v, nil
}
