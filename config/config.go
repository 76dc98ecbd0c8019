// Package config loads run parameters for the envphys command from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/udawtr/envphys-go/envphys"
	"gopkg.in/yaml.v3"
)

// Config holds the parameters of all three models. Missing keys keep the
// values from Default.
type Config struct {
	Vapor   Vapor   `yaml:"vapor"`
	Spectra Spectra `yaml:"spectra"`
	Soil    Soil    `yaml:"soil"`
}

// Vapor lists the temperatures to evaluate.
type Vapor struct {
	Temperatures []float64 `yaml:"temperatures"`
	Celsius      bool      `yaml:"celsius"` // temperatures given in °C
}

// Spectra describes one blackbody source and an optional receiver.
type Spectra struct {
	Temperature  float64    `yaml:"temperature"` // K
	Wavelength   [2]float64 `yaml:"wavelength"`  // m
	Samples      int        `yaml:"samples"`
	SourceRadius float64    `yaml:"source_radius"` // m, 0 = no attenuation
	Distance     float64    `yaml:"distance"`      // m
}

// Soil describes the diffusion parameters and the time/depth window.
type Soil struct {
	Time             [2]float64 `yaml:"time"`  // hours
	Depth            [2]float64 `yaml:"depth"` // m
	MeanTemperature  float64    `yaml:"mean_temperature"`
	SurfaceAmplitude float64    `yaml:"surface_amplitude"`
	Diffusivity      float64    `yaml:"diffusivity"` // m2/s
	Period           float64    `yaml:"period"`      // hours
	TimeSamples      int        `yaml:"time_samples"`
	DepthSamples     int        `yaml:"depth_samples"`
}

// Default returns the reference scenarios: the sun seen from the earth's
// orbit and a daily surface wave over a 0.3 m soil column.
func Default() Config {
	return Config{
		Vapor: Vapor{
			Temperatures: []float64{273.15},
		},
		Spectra: Spectra{
			Temperature: envphys.SunTemperature,
			Wavelength:  [2]float64{0.05e-6, 10.0e-6},
			Samples:     envphys.DefaultSpectrumSamples,
		},
		Soil: Soil{
			Time:             [2]float64{0, 24},
			Depth:            [2]float64{0, 0.3},
			MeanTemperature:  15,
			SurfaceAmplitude: 10,
			Diffusivity:      2.0e-7,
			Period:           24,
			TimeSamples:      envphys.DefaultProfileSamples,
			DepthSamples:     envphys.DefaultProfileSamples,
		},
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML on top of Default.
func Parse(b []byte) (Config, error) {
	conf := Default()
	if err := yaml.Unmarshal(b, &conf); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return conf, nil
}

// Params converts the soil section to model parameters.
func (s Soil) Params() envphys.DiffusionParameters {
	return envphys.DiffusionParameters{
		MeanTemperature:  s.MeanTemperature,
		SurfaceAmplitude: s.SurfaceAmplitude,
		Diffusivity:      s.Diffusivity,
		Period:           s.Period,
	}
}

// Kelvin returns the vapor temperatures in kelvin.
func (v Vapor) Kelvin() []float64 {
	if v.Celsius {
		return envphys.CelsiusToKelvin(v.Temperatures)
	}
	return append([]float64{}, v.Temperatures...)
}
