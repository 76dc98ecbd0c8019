package envphys

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// daily forcing over a low-diffusivity soil
var k1 = DiffusionParameters{
	MeanTemperature:  15,
	SurfaceAmplitude: 10,
	Diffusivity:      2.0e-7,
	Period:           24,
}

func Test_DiffusionParameters(t *testing.T) {
	assert.InDelta(t, 2*math.Pi/86400, k1.AngularFrequency(), 1e-15)
	assert.InDelta(t, 0.0741646, k1.DampingDepth(), 1e-6)

	d := k1.DampingDepth()
	assert.InDelta(t, 10*math.Exp(-1), k1.AmplitudeAt(d), 1e-12)
	assert.InDelta(t, 1.0, k1.PhaseLagAt(d), 1e-12)
	assert.Equal(t, 10.0, k1.AmplitudeAt(0))
}

func Test_SoilTemperatureProfile_Shape(t *testing.T) {
	sp, err := SoilTemperatureProfile([2]float64{0, 24}, [2]float64{0, 0.3}, k1)
	require.NoError(t, err)

	r, c := sp.Temperature.Dims()
	assert.Equal(t, DefaultProfileSamples, r)
	assert.Equal(t, DefaultProfileSamples, c)
	assert.Len(t, sp.Time, DefaultProfileSamples)
	assert.Len(t, sp.Depth, DefaultProfileSamples)
	assert.Equal(t, k1, sp.Params)

	// never leaves the requested bounds
	assert.Equal(t, 0.0, floats.Min(sp.Time))
	assert.Equal(t, 24.0, floats.Max(sp.Time))
	assert.Equal(t, 0.0, floats.Min(sp.Depth))
	assert.Equal(t, 0.3, floats.Max(sp.Depth))

	sp, err = SoilTemperatureProfile([2]float64{0, 24}, [2]float64{0, 0.3}, k1,
		WithTimeSamples(25), WithDepthSamples(7))
	require.NoError(t, err)
	r, c = sp.Temperature.Dims()
	assert.Equal(t, 7, r)
	assert.Equal(t, 25, c)
}

// row i is Depth[i], column j is Time[j]
func Test_SoilTemperatureProfile_Indexing(t *testing.T) {
	sp, err := SoilTemperatureProfile([2]float64{0, 48}, [2]float64{0, 0.5}, k1,
		WithTimeSamples(31), WithDepthSamples(11))
	require.NoError(t, err)

	for i, z := range sp.Depth {
		for j, ti := range sp.Time {
			assert.InDelta(t, k1.TemperatureAt(z, ti), sp.Temperature.At(i, j), 1e-12)
		}
	}
}

// surface swings between 15 - 10 and 15 + 10
func Test_SoilTemperatureProfile_Surface(t *testing.T) {
	sp, err := SoilTemperatureProfile([2]float64{0, 24}, [2]float64{0, 0.3}, k1)
	require.NoError(t, err)

	surface := sp.Temperature.RawRowView(0)
	assert.InDelta(t, 25.0, floats.Max(surface), 1e-3)
	assert.InDelta(t, 5.0, floats.Min(surface), 1e-3)
	assert.InDelta(t, 15.0, surface[0], 1e-12)
	assert.InDelta(t, surface[0], surface[len(surface)-1], 1e-9)
}

func Test_SoilTemperatureProfile_Periodic(t *testing.T) {
	// one sample per hour over two periods
	sp, err := SoilTemperatureProfile([2]float64{0, 48}, [2]float64{0, 0.3}, k1,
		WithTimeSamples(49), WithDepthSamples(13))
	require.NoError(t, err)

	for i := range sp.Depth {
		row := sp.Temperature.RawRowView(i)
		for j := 0; j+24 < len(row); j++ {
			assert.InDelta(t, row[j], row[j+24], 1e-9, "depth %g, hour %d", sp.Depth[i], j)
		}
	}
}

func Test_SoilTemperatureProfile_AmplitudeDecay(t *testing.T) {
	sp, err := SoilTemperatureProfile([2]float64{0, 24}, [2]float64{0, 0.3}, k1)
	require.NoError(t, err)

	prev := math.Inf(1)
	for i, z := range sp.Depth {
		row := sp.Temperature.RawRowView(i)
		amp := (floats.Max(row) - floats.Min(row)) / 2

		assert.Less(t, amp, prev, "depth %g", z)
		assert.InDelta(t, k1.AmplitudeAt(z), amp, 1e-3, "depth %g", z)
		prev = amp
	}
}

// higher diffusivity carries the wave deeper
func Test_SoilTemperatureProfile_Diffusivity(t *testing.T) {
	k2 := k1
	k2.Diffusivity = 8.0e-7

	assert.Greater(t, k2.DampingDepth(), k1.DampingDepth())
	assert.Greater(t, k2.AmplitudeAt(0.3), k1.AmplitudeAt(0.3))
}

func Test_SoilTemperatureProfile_Deterministic(t *testing.T) {
	a, err := SoilTemperatureProfile([2]float64{0, 24}, [2]float64{0, 0.3}, k1)
	require.NoError(t, err)
	b, err := SoilTemperatureProfile([2]float64{0, 24}, [2]float64{0, 0.3}, k1)
	require.NoError(t, err)

	assert.True(t, mat.Equal(a.Temperature, b.Temperature))
	assert.Equal(t, a.Time, b.Time)
	assert.Equal(t, a.Depth, b.Depth)
}

func Test_SoilTemperatureProfile_DegenerateInterval(t *testing.T) {
	sp, err := SoilTemperatureProfile([2]float64{12, 12}, [2]float64{0.1, 0.1}, k1,
		WithTimeSamples(3), WithDepthSamples(2))
	require.NoError(t, err)

	want := k1.TemperatureAt(0.1, 12)
	for _, v := range sp.Temperature.RawMatrix().Data {
		assert.InDelta(t, want, v, 1e-12)
	}
}

func Test_SoilTemperatureProfile_InvalidDomain(t *testing.T) {
	zeroK := k1
	zeroK.Diffusivity = 0
	negK := k1
	negK.Diffusivity = -2e-7
	zeroP := k1
	zeroP.Period = 0
	negP := k1
	negP.Period = -24
	nanMean := k1
	nanMean.MeanTemperature = math.NaN()

	for _, p := range []DiffusionParameters{zeroK, negK, zeroP, negP, nanMean} {
		sp, err := SoilTemperatureProfile([2]float64{0, 24}, [2]float64{0, 0.3}, p)
		assert.Nil(t, sp)
		assert.ErrorIs(t, err, ErrInvalidDomain, "%+v", p)
	}

	bounds := []struct{ time, depth [2]float64 }{
		{[2]float64{0, 24}, [2]float64{-0.1, 0.3}},
		{[2]float64{24, 0}, [2]float64{0, 0.3}},
		{[2]float64{0, 24}, [2]float64{0.3, 0}},
		{[2]float64{0, math.Inf(1)}, [2]float64{0, 0.3}},
	}
	for _, b := range bounds {
		_, err := SoilTemperatureProfile(b.time, b.depth, k1)
		assert.ErrorIs(t, err, ErrInvalidDomain, "%v %v", b.time, b.depth)
	}

	_, err := SoilTemperatureProfile([2]float64{0, 24}, [2]float64{0, 0.3}, k1, WithTimeSamples(1))
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func Test_SoilProfile_Coordinates(t *testing.T) {
	sp, err := SoilTemperatureProfile([2]float64{0, 24}, [2]float64{0, 0.3}, k1,
		WithTimeSamples(5), WithDepthSamples(3))
	require.NoError(t, err)

	X, Y, err := sp.Coordinates()
	require.NoError(t, err)

	r, c := X.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 5, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Equal(t, sp.Time[j], X.At(i, j))
			assert.Equal(t, sp.Depth[i], Y.At(i, j))
		}
	}
}
