package envphys

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

//--------------------------------------
// Blackbody spectra (Planck's law)
//--------------------------------------

// Constants used in Planck's law, J s, m s^-1, J K^-1.
const (
	Planck     = 6.63e-34
	LightSpeed = 3.0e+8
	Boltzmann  = 1.38e-23
)

// Wien's displacement constant, m K.
const WienDisplacement = 2.898e-3

// Reference bodies for the sun to earth composition, m and K.
const (
	SunRadius        = 6.95e8
	EarthOrbitRadius = 1.49e11
	SunTemperature   = 5800.0
)

// WienCrossover is the value of x = hc/(λkT) above which radiance is
// evaluated as (2πhc²/λ⁵)·exp(-x). Past this point exp(x)-1 and exp(x)
// agree to a relative e^-50 (about 2e-22), so the switch is exact in
// float64, and exp(x) itself is never formed for large x.
const WienCrossover = 50.0

// DefaultSpectrumSamples is the wavelength sample count used unless
// WithSamples overrides it.
const DefaultSpectrumSamples = 200

// Stefan-Boltzmann constant derived from the constants above, W m^-2 K^-4.
var StefanBoltzmann = 2 * math.Pow(math.Pi, 5) * math.Pow(Boltzmann, 4) /
	(15 * math.Pow(Planck, 3) * LightSpeed * LightSpeed)

// Spectrum is a wavelength grid with the spectral radiance of one source
// temperature aligned to it.
type Spectrum struct {
	Temperature float64   // source temperature, K
	Wavelength  []float64 // m
	Radiance    []float64 // W m^-3
}

type spectrumConfig struct {
	samples int
}

// SpectrumOption configures SpectralRadiance.
type SpectrumOption func(*spectrumConfig)

// WithSamples sets the number of wavelength samples.
func WithSamples(n int) SpectrumOption {
	return func(c *spectrumConfig) {
		c.samples = n
	}
}

// SpectralRadiance evaluates Planck's law over an evenly spaced wavelength
// grid spanning bounds.
//
// Args:
//
//	T: source temperature [K]
//	bounds: wavelength interval [m], 0 < bounds[0] < bounds[1]
//
// Returns:
//
//	Spectrum with len(Wavelength) == len(Radiance) == sample count
func SpectralRadiance(T float64, bounds [2]float64, opts ...SpectrumOption) (*Spectrum, error) {
	cfg := spectrumConfig{samples: DefaultSpectrumSamples}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := positive("source temperature [K]", T); err != nil {
		return nil, err
	}
	if err := positive("minimum wavelength [m]", bounds[0]); err != nil {
		return nil, err
	}
	if err := finite("maximum wavelength [m]", bounds[1]); err != nil {
		return nil, err
	}
	if bounds[0] >= bounds[1] {
		return nil, fmt.Errorf("wavelength interval [%g, %g] is empty: %w", bounds[0], bounds[1], ErrInvalidDomain)
	}

	logger := logging.GetLogger("envphys")
	logger.Debugf("spectral radiance: T=%g K, [%g, %g] m, %d samples", T, bounds[0], bounds[1], cfg.samples)

	lmbda, err := Linspace(bounds[0], bounds[1], cfg.samples)
	if err != nil {
		return nil, err
	}

	radiance := make([]float64, len(lmbda))
	for i, l := range lmbda {
		b, err := planckRadiance(l, T)
		if err != nil {
			return nil, fmt.Errorf("wavelength %g m: %w", l, err)
		}
		radiance[i] = b
	}

	return &Spectrum{Temperature: T, Wavelength: lmbda, Radiance: radiance}, nil
}

// NewSpectrum pairs an externally produced wavelength grid with radiance
// values.
func NewSpectrum(T float64, wavelength, radiance []float64) (*Spectrum, error) {
	if len(wavelength) != len(radiance) {
		return nil, fmt.Errorf("%d wavelengths vs %d radiances: %w", len(wavelength), len(radiance), ErrShapeMismatch)
	}
	if len(wavelength) < 2 {
		return nil, fmt.Errorf("spectrum needs at least 2 samples, got %d: %w", len(wavelength), ErrInvalidDomain)
	}
	return &Spectrum{
		Temperature: T,
		Wavelength:  append([]float64{}, wavelength...),
		Radiance:    append([]float64{}, radiance...),
	}, nil
}

// SolarSpectrumAtEarth is the 5800 K solar spectrum over [0.05, 10] µm
// scaled to the earth's orbit.
func SolarSpectrumAtEarth() (*Spectrum, error) {
	sun, err := SpectralRadiance(SunTemperature, [2]float64{0.05e-6, 10.0e-6})
	if err != nil {
		return nil, err
	}
	return sun.AtDistance(SunRadius, EarthOrbitRadius)
}

// AtDistance applies the inverse-square law, scaling every radiance by
// (rSource/rDistance)². The receiver keeps its own copy of the grid.
func (s *Spectrum) AtDistance(rSource, rDistance float64) (*Spectrum, error) {
	if err := positive("source radius [m]", rSource); err != nil {
		return nil, err
	}
	if err := positive("distance [m]", rDistance); err != nil {
		return nil, err
	}

	ratio := rSource / rDistance
	scaled := make([]float64, len(s.Radiance))
	floats.ScaleTo(scaled, ratio*ratio, s.Radiance)

	return &Spectrum{
		Temperature: s.Temperature,
		Wavelength:  append([]float64{}, s.Wavelength...),
		Radiance:    scaled,
	}, nil
}

// Peak returns the wavelength [m] of maximum radiance.
func (s *Spectrum) Peak() float64 {
	return s.Wavelength[floats.MaxIdx(s.Radiance)]
}

// Exitance integrates the radiance over the grid with the trapezoidal rule,
// W m^-2.
func (s *Spectrum) Exitance() float64 {
	return integrate.Trapezoidal(s.Wavelength, s.Radiance)
}

// BlackbodyExitance is the total emissive power σT⁴, W m^-2.
func BlackbodyExitance(T float64) float64 {
	return StefanBoltzmann * math.Pow(T, 4)
}

// B(λ,T) = 2πhc² / (λ⁵ (exp(hc/(λkT)) - 1))
func planckRadiance(l, T float64) (float64, error) {
	pre := (2 * math.Pi * Planck * LightSpeed * LightSpeed) / math.Pow(l, 5)
	x := (Planck * LightSpeed) / (l * Boltzmann * T)

	var b float64
	if x > WienCrossover {
		b = pre * math.Exp(-x)
	} else {
		b = pre / math.Expm1(x)
	}

	if math.IsInf(b, 0) || math.IsNaN(b) {
		return 0, fmt.Errorf("radiance at x=%g: %w", x, ErrNumericOverflow)
	}
	return b, nil
}
