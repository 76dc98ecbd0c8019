// Package export renders model results as CSV for the plotting layer.
package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/udawtr/envphys-go/envphys"
)

type vaporPressureRow struct {
	Temperature             float64 `csv:"temperature_k"`
	SaturationVaporPressure float64 `csv:"saturation_vapor_pressure_pa"`
}

type spectrumRow struct {
	Wavelength float64 `csv:"wavelength_m"`
	Radiance   float64 `csv:"radiance_w_m3"`
}

type soilRow struct {
	Time        float64 `csv:"time_h"`
	Depth       float64 `csv:"depth_m"`
	Temperature float64 `csv:"temperature"`
}

// VaporPressure writes one row per temperature.
func VaporPressure(out io.Writer, temps, es []float64) error {
	if len(temps) != len(es) {
		return fmt.Errorf("%d temperatures vs %d pressures: %w", len(temps), len(es), envphys.ErrShapeMismatch)
	}

	rows := make([]*vaporPressureRow, len(temps))
	for i := range temps {
		rows[i] = &vaporPressureRow{Temperature: temps[i], SaturationVaporPressure: es[i]}
	}
	return gocsv.Marshal(&rows, out)
}

// Spectrum writes one row per wavelength.
func Spectrum(out io.Writer, s *envphys.Spectrum) error {
	if len(s.Wavelength) != len(s.Radiance) {
		return fmt.Errorf("%d wavelengths vs %d radiances: %w", len(s.Wavelength), len(s.Radiance), envphys.ErrShapeMismatch)
	}

	rows := make([]*spectrumRow, len(s.Wavelength))
	for i := range s.Wavelength {
		rows[i] = &spectrumRow{Wavelength: s.Wavelength[i], Radiance: s.Radiance[i]}
	}
	return gocsv.Marshal(&rows, out)
}

// SoilProfile writes the grid in long form, depth-major: all times of the
// first depth, then the next depth.
func SoilProfile(out io.Writer, sp *envphys.SoilProfile) error {
	r, c := sp.Temperature.Dims()
	if r != len(sp.Depth) || c != len(sp.Time) {
		return fmt.Errorf("grid %dx%d vs %d depths x %d times: %w", r, c, len(sp.Depth), len(sp.Time), envphys.ErrShapeMismatch)
	}

	rows := make([]*soilRow, 0, r*c)
	for i, z := range sp.Depth {
		for j, t := range sp.Time {
			rows = append(rows, &soilRow{Time: t, Depth: z, Temperature: sp.Temperature.At(i, j)})
		}
	}
	return gocsv.Marshal(&rows, out)
}
