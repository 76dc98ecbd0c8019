package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []string {
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(b), "\n"), "\n")
}

func Test_run_Spectra(t *testing.T) {
	out := filepath.Join(t.TempDir(), "spectra.csv")
	err := run([]string{"envphys", "spectra", "-T", "290", "--min", "0.05e-6", "--max", "20e-6", "-n", "10", "-o", out})
	require.NoError(t, err)

	l := readLines(t, out)
	assert.Len(t, l, 11)
	assert.Equal(t, "wavelength_m,radiance_w_m3", l[0])
}

func Test_run_Vapor(t *testing.T) {
	out := filepath.Join(t.TempDir(), "vapor.csv")
	err := run([]string{"envphys", "vapor", "-t", "0", "-t", "20", "--celsius", "-o", out})
	require.NoError(t, err)

	l := readLines(t, out)
	require.Len(t, l, 3)
	assert.True(t, strings.HasPrefix(l[1], "273.15,611."), l[1])
}

func Test_run_SoilConfig(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "soil.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("soil:\n  time_samples: 4\n  depth_samples: 3\n"), 0o644))

	out := filepath.Join(dir, "soil.csv")
	err := run([]string{"envphys", "soil", "-K", "8e-7", "-c", conf, "-o", out})
	require.NoError(t, err)

	l := readLines(t, out)
	assert.Len(t, l, 1+4*3)
	assert.Equal(t, "time_h,depth_m,temperature", l[0])
}

func Test_run_InvalidDomain(t *testing.T) {
	out := filepath.Join(t.TempDir(), "soil.csv")
	err := run([]string{"envphys", "soil", "-K", "0", "-o", out})
	assert.Error(t, err)
	assert.NoFileExists(t, out)

	err = run([]string{"envphys", "soil", "-p", "abc", "-o", out})
	assert.Error(t, err)
}
