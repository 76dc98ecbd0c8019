package envphys

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
)

//--------------------------------------
// Saturation vapor pressure (Wexler 1976, Hardy 1998)
//--------------------------------------

// Hardy (1998) coefficients g0..g7 for the Wexler (1976) expansion.
var wexlerCoefficients = [8]float64{
	-2.8365744e3,
	-6.028076559e3,
	1.954263612e1,
	-2.737830188e-2,
	1.6261698e-5,
	7.0229056e-10,
	-1.8680009e-13,
	2.7150305,
}

// SaturationVaporPressure computes the saturation vapor pressure over water
// for each temperature.
//
// Args:
//
//	temps: temperatures [K], every element > 0
//
// Returns:
//
//	saturation vapor pressures [Pa], same length and order as temps
//
// Note:
//
//	The exponent peaks near 461 (at about 7800 K) and never reaches the
//	float64 limit for finite input; the overflow check guards the
//	contract rather than a reachable case.
func SaturationVaporPressure(temps []float64) ([]float64, error) {
	logger := logging.GetLogger("envphys")
	logger.Debugf("saturation vapor pressure: %d temperatures", len(temps))

	es := make([]float64, len(temps))
	for i, T := range temps {
		v, err := SaturationVaporPressureAt(T)
		if err != nil {
			return nil, fmt.Errorf("temperature[%d]: %w", i, err)
		}
		es[i] = v
	}
	return es, nil
}

// SaturationVaporPressureAt is the scalar form of SaturationVaporPressure.
func SaturationVaporPressureAt(T float64) (float64, error) {
	if err := positive("temperature [K]", T); err != nil {
		return 0, err
	}
	return checkedExp(wexlerExponent(T))
}

// ln(es) = Σ g_i T^(i-2) + g7 ln(T), i = 0..6
func wexlerExponent(T float64) float64 {
	g := wexlerCoefficients

	// powers run from T^-2 up to T^4
	p := 1.0 / (T * T)
	sum := 0.0
	for i := 0; i < 7; i++ {
		sum += g[i] * p
		p *= T
	}
	return sum + g[7]*math.Log(T)
}
