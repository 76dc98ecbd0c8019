// envphys
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/envphys-go/config"
	"github.com/udawtr/envphys-go/envphys"
	"github.com/udawtr/envphys-go/export"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// command line
	parser := argparse.NewParser("envphys", "Evaluates vapor pressure, blackbody spectra and soil temperature profiles")

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "CSV output path (stdout when empty)"})

	configPath := parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "YAML parameter file"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Log level"})

	vapor := parser.NewCommand("vapor", "Saturation vapor pressure [Pa]")
	vaporTemps := vapor.StringList("t", "temperature", &argparse.Options{
		Help: "Temperature, repeatable"})
	vaporCelsius := vapor.Flag("", "celsius", &argparse.Options{
		Help: "Temperatures are given in degrees C"})

	spectra := parser.NewCommand("spectra", "Blackbody spectral radiance [W/m3]")
	spTemp := spectra.String("T", "temperature", &argparse.Options{Help: "Source temperature [K]"})
	spMin := spectra.String("", "min", &argparse.Options{Help: "Minimum wavelength [m]"})
	spMax := spectra.String("", "max", &argparse.Options{Help: "Maximum wavelength [m]"})
	spSamples := spectra.String("n", "samples", &argparse.Options{Help: "Wavelength samples"})
	spRadius := spectra.String("", "source_radius", &argparse.Options{Help: "Source radius [m] for inverse-square scaling"})
	spDistance := spectra.String("", "distance", &argparse.Options{Help: "Receiver distance [m] for inverse-square scaling"})
	spEarth := spectra.Flag("", "earth_orbit", &argparse.Options{Help: "Scale from the solar radius to the earth's orbit"})

	soil := parser.NewCommand("soil", "Soil temperature profile over time and depth")
	soTmin := soil.String("", "tmin", &argparse.Options{Help: "Start time [h]"})
	soTmax := soil.String("", "tmax", &argparse.Options{Help: "End time [h]"})
	soZmin := soil.String("", "zmin", &argparse.Options{Help: "Minimum depth [m]"})
	soZmax := soil.String("", "zmax", &argparse.Options{Help: "Maximum depth [m]"})
	soMean := soil.String("", "mean", &argparse.Options{Help: "Mean surface temperature"})
	soAmp := soil.String("", "amplitude", &argparse.Options{Help: "Surface amplitude"})
	soK := soil.String("K", "diffusivity", &argparse.Options{Help: "Thermal diffusivity [m2/s]"})
	soPeriod := soil.String("p", "period", &argparse.Options{Help: "Period [h]"})
	soNt := soil.String("", "time_samples", &argparse.Options{Help: "Time samples"})
	soNz := soil.String("", "depth_samples", &argparse.Options{Help: "Depth samples"})

	if err := parser.Parse(args); err != nil {
		fmt.Print(parser.Usage(err))
		return err
	}

	// log level
	logger := logging.GetLogger("envphys")
	switch *logLevel {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	}

	conf := config.Default()
	if *configPath != "" {
		logger.Infof("config: %s", *configPath)
		c, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		conf = c
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	var err error
	switch {
	case vapor.Happened():
		if len(*vaporTemps) > 0 {
			conf.Vapor.Temperatures, err = parseFloats(*vaporTemps)
			if err != nil {
				return err
			}
		}
		if *vaporCelsius {
			conf.Vapor.Celsius = true
		}
		err = runVapor(buf, conf.Vapor)

	case spectra.Happened():
		err = firstErr(
			overrideFloat(&conf.Spectra.Temperature, *spTemp),
			overrideFloat(&conf.Spectra.Wavelength[0], *spMin),
			overrideFloat(&conf.Spectra.Wavelength[1], *spMax),
			overrideInt(&conf.Spectra.Samples, *spSamples),
			overrideFloat(&conf.Spectra.SourceRadius, *spRadius),
			overrideFloat(&conf.Spectra.Distance, *spDistance),
		)
		if err != nil {
			return err
		}
		if *spEarth {
			conf.Spectra.SourceRadius = envphys.SunRadius
			conf.Spectra.Distance = envphys.EarthOrbitRadius
		}
		err = runSpectra(buf, conf.Spectra)

	case soil.Happened():
		err = firstErr(
			overrideFloat(&conf.Soil.Time[0], *soTmin),
			overrideFloat(&conf.Soil.Time[1], *soTmax),
			overrideFloat(&conf.Soil.Depth[0], *soZmin),
			overrideFloat(&conf.Soil.Depth[1], *soZmax),
			overrideFloat(&conf.Soil.MeanTemperature, *soMean),
			overrideFloat(&conf.Soil.SurfaceAmplitude, *soAmp),
			overrideFloat(&conf.Soil.Diffusivity, *soK),
			overrideFloat(&conf.Soil.Period, *soPeriod),
			overrideInt(&conf.Soil.TimeSamples, *soNt),
			overrideInt(&conf.Soil.DepthSamples, *soNz),
		)
		if err != nil {
			return err
		}
		err = runSoil(buf, conf.Soil)
	}
	if err != nil {
		return err
	}

	// output
	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("saved CSV: %s", *filename)
		if err := os.WriteFile(*filename, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}

	logger.Infof("finished")
	return nil
}

func runVapor(buf *bytes.Buffer, v config.Vapor) error {
	temps := v.Kelvin()
	es, err := envphys.SaturationVaporPressure(temps)
	if err != nil {
		return err
	}
	return export.VaporPressure(buf, temps, es)
}

func runSpectra(buf *bytes.Buffer, s config.Spectra) error {
	spectrum, err := envphys.SpectralRadiance(s.Temperature, s.Wavelength, envphys.WithSamples(s.Samples))
	if err != nil {
		return err
	}
	if s.SourceRadius != 0 || s.Distance != 0 {
		spectrum, err = spectrum.AtDistance(s.SourceRadius, s.Distance)
		if err != nil {
			return err
		}
	}
	return export.Spectrum(buf, spectrum)
}

func runSoil(buf *bytes.Buffer, s config.Soil) error {
	sp, err := envphys.SoilTemperatureProfile(s.Time, s.Depth, s.Params(),
		envphys.WithTimeSamples(s.TimeSamples), envphys.WithDepthSamples(s.DepthSamples))
	if err != nil {
		return err
	}
	return export.SoilProfile(buf, sp)
}

// overrideFloat replaces *dst when the flag was given.
func overrideFloat(dst *float64, flag string) error {
	if flag == "" {
		return nil
	}
	v, err := strconv.ParseFloat(flag, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", flag, err)
	}
	*dst = v
	return nil
}

func overrideInt(dst *int, flag string) error {
	if flag == "" {
		return nil
	}
	v, err := strconv.Atoi(flag)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", flag, err)
	}
	*dst = v
	return nil
}

func parseFloats(list []string) ([]float64, error) {
	vs := make([]float64, len(list))
	for i, s := range list {
		if err := overrideFloat(&vs[i], s); err != nil {
			return nil, err
		}
	}
	return vs, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
