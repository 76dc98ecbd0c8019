package envphys

import (
	"fmt"
	"math"
)

// 0 °C in kelvin.
const ZeroCelsius = 273.15

// CelsiusToKelvin converts a series of temperatures [°C] to kelvin.
func CelsiusToKelvin(celsius []float64) []float64 {
	k := make([]float64, len(celsius))
	for i, c := range celsius {
		k[i] = c + ZeroCelsius
	}
	return k
}

// ActualVaporPressure derives the vapor pressure e = es * RH / 100.
//
// Args:
//
//	es: saturation vapor pressure [Pa]
//	rh: relative humidity [%]
//
// Returns:
//
//	vapor pressure [Pa]
func ActualVaporPressure(es, rh []float64) ([]float64, error) {
	if len(es) != len(rh) {
		return nil, fmt.Errorf("%d saturation pressures vs %d humidities: %w", len(es), len(rh), ErrShapeMismatch)
	}

	e := make([]float64, len(es))
	for i := range es {
		if err := nonNegative("saturation vapor pressure [Pa]", es[i]); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		if err := nonNegative("relative humidity [%]", rh[i]); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		e[i] = es[i] * (rh[i] / 100)
	}
	return e, nil
}

// AbsoluteHumidity computes the water vapor density [g/m3] from vapor
// pressure e [Pa] and temperature T [K] as 2170 * e[kPa] / T.
func AbsoluteHumidity(e, temps []float64) ([]float64, error) {
	if len(e) != len(temps) {
		return nil, fmt.Errorf("%d vapor pressures vs %d temperatures: %w", len(e), len(temps), ErrShapeMismatch)
	}

	rho := make([]float64, len(e))
	for i := range e {
		if err := nonNegative("vapor pressure [Pa]", e[i]); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		if err := positive("temperature [K]", temps[i]); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		rho[i] = 2170 * (e[i] / 1000) / temps[i]
	}
	return rho, nil
}

func nonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%s must be >= 0, got %g: %w", name, v, ErrInvalidDomain)
	}
	return nil
}
