package envphys

import (
	"fmt"
	"math"
	"runtime"

	"github.com/hhkbp2/go-logging"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//--------------------------------------
// Soil temperature profile (periodic heat diffusion)
//--------------------------------------

const secondsPerHour = 3600.0

// DefaultProfileSamples is the time and depth sample count used unless
// overridden.
const DefaultProfileSamples = 500

// DiffusionParameters describes the surface forcing and the soil.
type DiffusionParameters struct {
	MeanTemperature  float64 // Tavg, average surface temperature
	SurfaceAmplitude float64 // T0, amplitude of the surface oscillation
	Diffusivity      float64 // K, thermal diffusivity, m^2 s^-1
	Period           float64 // p, oscillation period, hours
}

// AngularFrequency ω = 2π / (p·3600), rad s^-1.
func (p DiffusionParameters) AngularFrequency() float64 {
	return (2 * math.Pi) / (p.Period * secondsPerHour)
}

// DampingDepth D = sqrt(2K/ω), m.
func (p DiffusionParameters) DampingDepth() float64 {
	return math.Sqrt((2 * p.Diffusivity) / p.AngularFrequency())
}

// AmplitudeAt is the oscillation amplitude at depth z [m].
func (p DiffusionParameters) AmplitudeAt(z float64) float64 {
	return p.SurfaceAmplitude * math.Exp(-z/p.DampingDepth())
}

// PhaseLagAt is the phase lag [rad] relative to the surface at depth z [m].
func (p DiffusionParameters) PhaseLagAt(z float64) float64 {
	return z / p.DampingDepth()
}

// TemperatureAt evaluates the profile at depth z [m] and time t [hours].
func (p DiffusionParameters) TemperatureAt(z, t float64) float64 {
	d := p.DampingDepth()
	w := p.AngularFrequency()
	return p.MeanTemperature + p.SurfaceAmplitude*math.Exp(-z/d)*math.Sin(w*t*secondsPerHour-z/d)
}

func (p DiffusionParameters) validate() error {
	if err := finite("mean temperature", p.MeanTemperature); err != nil {
		return err
	}
	if err := finite("surface amplitude", p.SurfaceAmplitude); err != nil {
		return err
	}
	if err := positive("thermal diffusivity [m2/s]", p.Diffusivity); err != nil {
		return err
	}
	return positive("period [h]", p.Period)
}

// SoilProfile is the temperature field over time and depth.
//
// Temperature has shape len(Depth) x len(Time): row i belongs to Depth[i]
// and column j to Time[j].
type SoilProfile struct {
	Params      DiffusionParameters
	Time        []float64 // hours
	Depth       []float64 // m
	Temperature *mat.Dense
}

type profileConfig struct {
	timeSamples  int
	depthSamples int
}

// ProfileOption configures SoilTemperatureProfile.
type ProfileOption func(*profileConfig)

// WithTimeSamples sets the number of time samples.
func WithTimeSamples(n int) ProfileOption {
	return func(c *profileConfig) {
		c.timeSamples = n
	}
}

// WithDepthSamples sets the number of depth samples.
func WithDepthSamples(n int) ProfileOption {
	return func(c *profileConfig) {
		c.depthSamples = n
	}
}

// SoilTemperatureProfile evaluates
//
//	Temp(z,t) = Tavg + T0·exp(-z/D)·sin(ω·t·3600 - z/D)
//
// for every pairing of an evenly spaced time series over timeBounds [h] and
// depth series over depthBounds [m].
func SoilTemperatureProfile(timeBounds, depthBounds [2]float64, p DiffusionParameters, opts ...ProfileOption) (*SoilProfile, error) {
	cfg := profileConfig{timeSamples: DefaultProfileSamples, depthSamples: DefaultProfileSamples}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := interval("time [h]", timeBounds); err != nil {
		return nil, err
	}
	if err := interval("depth [m]", depthBounds); err != nil {
		return nil, err
	}
	if depthBounds[0] < 0 {
		return nil, fmt.Errorf("minimum depth %g m is above the surface: %w", depthBounds[0], ErrInvalidDomain)
	}

	ts, err := Linspace(timeBounds[0], timeBounds[1], cfg.timeSamples)
	if err != nil {
		return nil, fmt.Errorf("time series: %w", err)
	}
	zs, err := Linspace(depthBounds[0], depthBounds[1], cfg.depthSamples)
	if err != nil {
		return nil, fmt.Errorf("depth series: %w", err)
	}

	logger := logging.GetLogger("envphys")
	logger.Debugf("soil profile: %d depths x %d times, K=%g m2/s, p=%g h", len(zs), len(ts), p.Diffusivity, p.Period)

	w := p.AngularFrequency()
	d := p.DampingDepth()

	grid := mat.NewDense(len(zs), len(ts), nil)

	// rows share nothing but the read-only series
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, z := range zs {
		i, z := i, z
		g.Go(func() error {
			row := grid.RawRowView(i)
			amp := p.SurfaceAmplitude * math.Exp(-z/d)
			for j, t := range ts {
				row[j] = p.MeanTemperature + amp*math.Sin(w*t*secondsPerHour-z/d)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SoilProfile{Params: p, Time: ts, Depth: zs, Temperature: grid}, nil
}

// Coordinates returns the time (X) and depth (Y) grids matching
// Temperature, for surface and contour plots.
func (sp *SoilProfile) Coordinates() (X, Y *mat.Dense, err error) {
	return Meshgrid(sp.Time, sp.Depth)
}

// interval checks a finite, ordered [min, max] pair. min == max is allowed.
func interval(name string, b [2]float64) error {
	if err := finite(name+" lower bound", b[0]); err != nil {
		return err
	}
	if err := finite(name+" upper bound", b[1]); err != nil {
		return err
	}
	if b[0] > b[1] {
		return fmt.Errorf("%s interval [%g, %g] is reversed: %w", name, b[0], b[1], ErrInvalidDomain)
	}
	return nil
}
