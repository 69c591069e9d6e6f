package geodistance

import (
	"errors"
	"math"
	"testing"

	"github.com/lintang-b-s/geodistances/pkg"
	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	southernOcean = geo.NewLatLng(-57.97178750223649, 131.42756478116718)
	northRussia   = geo.NewLatLng(67.54068754544909, 52.576877730094196)
)

func mustSettings(t *testing.T, opts ...config.Option) config.Settings {
	t.Helper()
	s, err := config.NewSettings(opts...)
	require.NoError(t, err)
	return s
}

func TestHaversineDistanceFromPoint(t *testing.T) {
	s := mustSettings(t)
	dst := geo.Coordinates{
		geo.NewLatLng(0, 90),
		geo.NewLatLng(0, 180),
		geo.NewLatLng(90, 0),
		geo.NewLatLng(0, 0),
	}

	got := Haversine{}.DistanceFromPoint(geo.NewLatLng(0, 0), dst, s)

	require.Len(t, got.Values, 4)
	assert.InDelta(t, 10007.54, got.Values[0], 0.5)
	assert.InDelta(t, 20015.09, got.Values[1], 0.5)
	assert.InDelta(t, 10007.54, got.Values[2], 0.5)
	assert.Equal(t, 0.0, got.Values[3])
	assert.True(t, got.Convergence.Converged())
	assert.Equal(t, 4, got.Convergence.Cells)
}

func TestHaversineFixtures(t *testing.T) {
	dst := geo.Coordinates{
		southernOcean,
		northRussia,
		geo.NewLatLng(-69.56671734751839, 90.85189714141865),
		geo.NewLatLng(75.43497016541315, -73.9736856298929),
	}
	want := []float64{0, 15355.972751566913, 2308.405072056323, 17815.985603639052}

	got := Haversine{}.DistanceFromPoint(southernOcean, dst, config.DefaultSettings())
	for j := range want {
		assert.InDelta(t, want[j], got.Values[j], 1e-6)
	}
}

func TestVincentyDistanceFromPoint(t *testing.T) {
	tests := []struct {
		name     string
		src, dst geo.LatLng
		want     float64
		delta    float64
	}{
		{"equator quarter", geo.NewLatLng(0, 0), geo.NewLatLng(0, 90), 10018.754171, 1e-3},
		{"meridian quadrant", geo.NewLatLng(0, 0), geo.NewLatLng(90, 0), 10001.965729, 1e-3},
		{"equatorial antipode", geo.NewLatLng(0, 0), geo.NewLatLng(0, 180), 20003.931459, 1e-3},
		{"pole to pole", geo.NewLatLng(90, 0), geo.NewLatLng(-90, 0), 20003.931459, 1e-3},
		{"same pole other meridian", geo.NewLatLng(90, 0), geo.NewLatLng(90, 45), 0, 1e-9},
		{"coincident", geo.NewLatLng(12.5, -3.25), geo.NewLatLng(12.5, -3.25), 0, 1e-9},
		{"flinders peak to buninyong", geo.NewLatLng(-37.95103341666667, 144.42486788888888),
			geo.NewLatLng(-37.65282113888889, 143.92649552777777), 54.972271, 1e-3},
		{"long haul", southernOcean, northRussia, 15330.657, 1},
	}

	s := mustSettings(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vincenty{}.DistanceFromPoint(tt.src, geo.Coordinates{tt.dst}, s)
			require.Len(t, got.Values, 1)
			assert.InDelta(t, tt.want, got.Values[0], tt.delta)
			assert.True(t, got.Convergence.Converged())
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	cs := geo.Coordinates{
		southernOcean,
		northRussia,
		geo.NewLatLng(36.005892942509135, 117.51299907211086),
		geo.NewLatLng(-0.132232677257349, 16.894055270567975),
		geo.NewLatLng(89.8922878485931, 11.498427194912438),
	}
	s := mustSettings(t)

	for _, m := range []Model{Haversine{}, Vincenty{}} {
		t.Run(m.Name(), func(t *testing.T) {
			got := m.Distance(cs, cs, s)
			require.Equal(t, 5, got.Rows)
			require.Equal(t, 5, got.Cols)
			for i := 0; i < got.Rows; i++ {
				assert.InDelta(t, 0, got.At(i, i), 1e-9)
				for j := 0; j < got.Cols; j++ {
					assert.InDelta(t, got.At(i, j), got.At(j, i), 1e-6)
				}
			}
		})
	}
}

func TestDistanceMatchesDistanceFromPoint(t *testing.T) {
	src := geo.Coordinates{southernOcean, geo.NewLatLng(10, 10)}
	dst := geo.Coordinates{northRussia, geo.NewLatLng(-5, 40), geo.NewLatLng(0, 0)}
	s := mustSettings(t)

	for _, m := range []Model{Haversine{}, Vincenty{}} {
		got := m.Distance(src, dst, s)
		require.Equal(t, 2, got.Rows)
		require.Equal(t, 3, got.Cols)
		assert.Equal(t, 6, got.Convergence.Cells)
		for i, p := range src {
			row := m.DistanceFromPoint(p, dst, s)
			assert.Equal(t, row.Values, got.Row(i))
		}
	}
}

func TestDistanceEmpty(t *testing.T) {
	s := mustSettings(t)
	got := Vincenty{}.Distance(geo.Coordinates{}, geo.Coordinates{northRussia}, s)
	assert.Equal(t, 0, got.Rows)
	assert.Equal(t, 1, got.Cols)
	assert.Empty(t, got.Data)

	d := Haversine{}.DistanceFromPoint(northRussia, geo.Coordinates{}, s)
	assert.Empty(t, d.Values)
}

func TestModelAgreementShortDistances(t *testing.T) {
	src := geo.NewLatLng(45, 7)
	dst := geo.Coordinates{
		geo.NewLatLng(45.5, 7),
		geo.NewLatLng(45, 7.8),
		geo.NewLatLng(45.3, 7.4),
		geo.NewLatLng(44.2, 6.9),
	}
	s := mustSettings(t)

	h := Haversine{}.DistanceFromPoint(src, dst, s)
	v := Vincenty{}.DistanceFromPoint(src, dst, s)
	for j := range dst {
		require.Less(t, v.Values[j], 100.0)
		assert.Less(t, math.Abs(h.Values[j]-v.Values[j])/v.Values[j], 0.005)
	}
}

func TestVincentyUnconvergedInverseIsNotAnError(t *testing.T) {
	s := mustSettings(t, config.WithMaxIterations(1))

	got := Vincenty{}.DistanceFromPoint(southernOcean, geo.Coordinates{northRussia, southernOcean}, s)

	assert.Equal(t, 2, got.Convergence.Cells)
	assert.Equal(t, 1, got.Convergence.Unconverged)
	assert.False(t, got.Convergence.Converged())
	assert.Equal(t, 1, got.Convergence.Iterations)
	// first iterate is still within a few tens of km
	assert.InDelta(t, 15330.657, got.Values[0], 30)
	assert.Equal(t, 0.0, got.Values[1])
}

func TestVincentyAuxiliaryAntipodes(t *testing.T) {
	s := mustSettings(t)
	tests := []struct {
		name     string
		src, dst geo.LatLng
		want     float64
	}{
		{"equatorial antipode", geo.NewLatLng(0, 0), geo.NewLatLng(0, 180), 20003.931459},
		{"pole to pole", geo.NewLatLng(90, 0), geo.NewLatLng(-90, 0), 20003.931459},
		{"same pole", geo.NewLatLng(90, 0), geo.NewLatLng(90, 45), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vincenty{}.DistanceFromPoint(tt.src, geo.Coordinates{tt.dst}, s)
			// sin(sigma) vanishes on the first pass and sigma comes from the sign of cos(sigma)
			assert.Equal(t, 1, got.Convergence.Iterations)
			assert.True(t, got.Convergence.Converged())
			assert.InDelta(t, tt.want, got.Values[0], 1e-3)
		})
	}
}

// Nearly antipodal pairs off the equator are where lambda oscillates; with
// default settings the cell runs out of iterations and still yields a value.
func TestVincentyNearAntipodeDoesNotConverge(t *testing.T) {
	s := config.DefaultSettings()

	got := Vincenty{}.DistanceFromPoint(geo.NewLatLng(0, 0), geo.Coordinates{geo.NewLatLng(0.5, 179.7)}, s)

	require.Len(t, got.Values, 1)
	assert.Equal(t, 1, got.Convergence.Cells)
	assert.Equal(t, 1, got.Convergence.Unconverged)
	assert.Equal(t, s.MaxIterations(), got.Convergence.Iterations)
	assert.False(t, got.Convergence.Converged())
	if v := got.Values[0]; !IsMissing(v) {
		assert.False(t, math.IsInf(v, 0))
		assert.Greater(t, v, 0.0)
		assert.LessOrEqual(t, v, 20004.0)
	}
}

func TestDisplaceRoundTrip(t *testing.T) {
	src := geo.Coordinates{
		geo.NewLatLng(40, -74),
		geo.NewLatLng(-33.9, 151.2),
		geo.NewLatLng(0, 179.5),
		geo.NewLatLng(89.5, 10),
	}
	distances := []float64{5000, 120, 300, 50}
	bearings := []float64{60, 200, 90, 180}
	s := mustSettings(t)

	for _, m := range []Model{Haversine{}, Vincenty{}} {
		t.Run(m.Name(), func(t *testing.T) {
			got, err := m.Displace(src, PerRow(distances), PerRow(bearings), s)
			require.NoError(t, err)
			require.Len(t, got.Coordinates, len(src))
			assert.True(t, got.Convergence.Converged())

			for i, p := range got.Coordinates {
				assert.LessOrEqual(t, p.Lng, 180.0)
				assert.Greater(t, p.Lng, -180.0)
				back := m.DistanceFromPoint(src[i], geo.Coordinates{p}, s)
				assert.InDelta(t, distances[i], back.Values[0], 1e-6)
			}
		})
	}
}

func TestDisplaceKnownPoints(t *testing.T) {
	s := mustSettings(t)

	got, err := Vincenty{}.Displace(geo.Coordinates{geo.NewLatLng(0, 0)}, Scalar(10018.754171394622), Scalar(90.0), s)
	require.NoError(t, err)
	assert.InDelta(t, 0, got.Coordinates[0].Lat, 1e-9)
	assert.InDelta(t, 90, got.Coordinates[0].Lng, 1e-9)

	got, err = Haversine{}.Displace(geo.Coordinates{geo.NewLatLng(0, 170)}, Scalar(math.Pi/9*6371), Scalar(90.0), s)
	require.NoError(t, err)
	assert.InDelta(t, 0, got.Coordinates[0].Lat, 1e-9)
	assert.InDelta(t, -170, got.Coordinates[0].Lng, 1e-9)

	got, err = Vincenty{}.Displace(geo.Coordinates{geo.NewLatLng(10, 20)}, Scalar(0.0), Scalar(33.0), s)
	require.NoError(t, err)
	assert.InDelta(t, 10, got.Coordinates[0].Lat, 1e-12)
	assert.InDelta(t, 20, got.Coordinates[0].Lng, 1e-12)
}

func TestDisplaceNormalizesBearing(t *testing.T) {
	s := mustSettings(t)
	src := geo.Coordinates{geo.NewLatLng(-7.5, 110.3), geo.NewLatLng(51.5, -0.1)}

	for _, m := range []Model{Haversine{}, Vincenty{}} {
		t.Run(m.Name(), func(t *testing.T) {
			want, err := m.Displace(src, Scalar(250.0), Scalar(90.0), s)
			require.NoError(t, err)
			for _, bearing := range []float64{450, -270, 810} {
				got, err := m.Displace(src, Scalar(250.0), Scalar(bearing), s)
				require.NoError(t, err)
				assert.Equal(t, want.Coordinates, got.Coordinates, "bearing %v", bearing)
			}
		})
	}
}

func TestVincentyDisplaceNonConvergence(t *testing.T) {
	s := mustSettings(t, config.WithMaxIterations(1))

	got, err := Vincenty{}.Displace(geo.Coordinates{geo.NewLatLng(10, 20)}, Scalar(1000.0), Scalar(0.0), s)

	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrConvergence))
	assert.Equal(t, 1, got.Convergence.Unconverged)
	require.Len(t, got.Coordinates, 1)
	assert.InDelta(t, 19, got.Coordinates[0].Lat, 0.1)
}

func TestDisplaceValidation(t *testing.T) {
	src := geo.Coordinates{geo.NewLatLng(0, 0), geo.NewLatLng(1, 1)}
	s := mustSettings(t)

	tests := []struct {
		name     string
		distance RowParam[float64]
		bearing  RowParam[float64]
	}{
		{"distance length", PerRow([]float64{1}), Scalar(0.0)},
		{"bearing length", Scalar(1.0), PerRow([]float64{1, 2, 3})},
		{"negative distance", Scalar(-1.0), Scalar(0.0)},
		{"nan distance", PerRow([]float64{1, math.NaN()}), Scalar(0.0)},
		{"infinite bearing", Scalar(1.0), Scalar(math.Inf(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, m := range []Model{Haversine{}, Vincenty{}} {
				_, err := m.Displace(src, tt.distance, tt.bearing, s)
				assert.True(t, errors.Is(err, pkg.ErrBadParamInput), "%s: %v", m.Name(), err)
			}
		})
	}
}

func TestWithinDistance(t *testing.T) {
	src := geo.Coordinates{geo.NewLatLng(0, 0)}
	dst := geo.Coordinates{geo.NewLatLng(0, 90), geo.NewLatLng(0, 1), geo.NewLatLng(0, 0)}
	s := mustSettings(t)

	got, err := Haversine{}.WithinDistance(src, dst, 200, s)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, got.Row(0))
	assert.Equal(t, [][]int{{1, 2}}, got.Indices())

	_, err = Haversine{}.WithinDistance(src, dst, -1, s)
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
}

func TestLookup(t *testing.T) {
	m, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "haversine", m.Name())

	m, err = Lookup(" Vincenty ")
	require.NoError(t, err)
	assert.Equal(t, "vincenty", m.Name())

	_, err = Lookup("karney")
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
	assert.Equal(t, []string{"haversine", "vincenty"}, Names())
}
