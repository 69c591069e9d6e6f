package dispatch

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/lintang-b-s/geodistances/pkg"
	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/geo"
	"github.com/lintang-b-s/geodistances/pkg/geodistance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testThreshold = 64

// randomCoordinates keeps longitudes within 160 degrees of each other so no
// pair is close to antipodal.
func randomCoordinates(seed int64, n int) geo.Coordinates {
	rng := rand.New(rand.NewSource(seed))
	cs := make(geo.Coordinates, n)
	for i := range cs {
		cs[i] = geo.NewLatLng(rng.Float64()*160-80, rng.Float64()*160-80)
	}
	return cs
}

func newTestDispatcher(t *testing.T, model geodistance.Model, opts ...config.Option) *Dispatcher {
	t.Helper()
	opts = append([]config.Option{
		config.WithSerialThreshold(testThreshold),
		config.WithWorkers(4),
	}, opts...)
	s, err := config.NewSettings(opts...)
	require.NoError(t, err)
	return NewDispatcher(model, s, zap.NewNop())
}

var models = []geodistance.Model{geodistance.Haversine{}, geodistance.Vincenty{}}

func TestDistanceFromPointSerialParallelEquivalence(t *testing.T) {
	ctx := context.Background()
	src := geo.NewLatLng(-6.2, 26.8)

	for _, m := range models {
		d := newTestDispatcher(t, m)
		for _, n := range []int{testThreshold - 1, testThreshold, testThreshold + 1, 5*testThreshold + 3} {
			dst := randomCoordinates(int64(n), n)

			got, err := d.DistanceFromPoint(ctx, src, dst)
			require.NoError(t, err)

			want := m.DistanceFromPoint(src, dst, d.Settings())
			assert.Equal(t, want.Values, got.Values, "%s n=%d", m.Name(), n)
			assert.Equal(t, n, got.Convergence.Cells)
		}
	}
}

func TestDistanceOrientation(t *testing.T) {
	ctx := context.Background()
	small := randomCoordinates(1, 3)
	large := randomCoordinates(2, 40)

	for _, m := range models {
		d := newTestDispatcher(t, m)

		ab, err := d.Distance(ctx, small, large)
		require.NoError(t, err)
		assert.Equal(t, 3, ab.Rows)
		assert.Equal(t, 40, ab.Cols)

		ba, err := d.Distance(ctx, large, small)
		require.NoError(t, err)
		assert.Equal(t, 40, ba.Rows)
		assert.Equal(t, 3, ba.Cols)

		want := m.Distance(small, large, d.Settings())
		for i := 0; i < 3; i++ {
			for j := 0; j < 40; j++ {
				assert.InDelta(t, want.At(i, j), ab.At(i, j), 1e-6)
				assert.InDelta(t, want.At(i, j), ba.At(j, i), 1e-6)
			}
		}
		assert.Equal(t, 120, ab.Convergence.Cells)
	}
}

func TestDistanceWithinArrayMatchesBruteForce(t *testing.T) {
	ctx := context.Background()
	for _, m := range models {
		for _, n := range []int{0, 1, 2, 50} {
			cs := randomCoordinates(int64(100+n), n)
			d := newTestDispatcher(t, m)

			got, err := d.DistanceWithinArray(ctx, cs)
			require.NoError(t, err)
			require.Equal(t, n, got.Rows)
			require.Equal(t, n, got.Cols)
			assert.Equal(t, n*(n-1)/2, got.Convergence.Cells)

			want := m.Distance(cs, cs, d.Settings())
			for i := 0; i < n; i++ {
				assert.Equal(t, 0.0, got.At(i, i))
				for j := 0; j < n; j++ {
					assert.Equal(t, got.At(i, j), got.At(j, i))
					assert.InDelta(t, want.At(i, j), got.At(i, j), 1e-6, "%s n=%d (%d,%d)", m.Name(), n, i, j)
				}
			}
		}
	}
}

func TestDistanceWithinArraySerialAndParallelAgree(t *testing.T) {
	ctx := context.Background()
	cs := randomCoordinates(7, 30)

	serial := newTestDispatcher(t, geodistance.Haversine{}, config.WithSerialThreshold(math.MaxInt32))
	parallel := newTestDispatcher(t, geodistance.Haversine{}, config.WithSerialThreshold(0))

	a, err := serial.DistanceWithinArray(ctx, cs)
	require.NoError(t, err)
	b, err := parallel.DistanceWithinArray(ctx, cs)
	require.NoError(t, err)
	assert.Equal(t, a.Data, b.Data)

	c, err := serial.Distance(ctx, cs, cs[:5])
	require.NoError(t, err)
	e, err := parallel.Distance(ctx, cs, cs[:5])
	require.NoError(t, err)
	assert.Equal(t, c.Data, e.Data)
}

func TestEmptyArrays(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t, geodistance.Vincenty{})
	some := randomCoordinates(3, 4)

	dist, err := d.DistanceFromPoint(ctx, some[0], geo.Coordinates{})
	require.NoError(t, err)
	assert.Empty(t, dist.Values)

	m, err := d.Distance(ctx, geo.Coordinates{}, some)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows)
	assert.Equal(t, 4, m.Cols)

	m, err = d.Distance(ctx, some, geo.Coordinates{})
	require.NoError(t, err)
	assert.Equal(t, 4, m.Rows)
	assert.Equal(t, 0, m.Cols)

	idx, err := d.IndicesWithinDistance(ctx, some, geo.Coordinates{}, 10)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}, {}, {}, {}}, idx)

	among, err := d.IndicesWithinDistanceAmongArray(ctx, geo.Coordinates{}, 10)
	require.NoError(t, err)
	assert.Empty(t, among)
}

func TestSingleCoordinateSelfMatrix(t *testing.T) {
	d := newTestDispatcher(t, geodistance.Haversine{})

	m, err := d.DistanceWithinArray(context.Background(), geo.Coordinates{geo.NewLatLng(1, 2)})
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, m.Data)
}

func TestWithinDistanceOfPoint(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t, geodistance.Haversine{})
	src := geo.NewLatLng(0, 0)
	dst := geo.Coordinates{geo.NewLatLng(0, 90), geo.NewLatLng(0, 1), geo.NewLatLng(0, 0), geo.NewLatLng(1, 0)}

	p, err := d.WithinDistanceOfPoint(ctx, src, dst, geodistance.Scalar(112.0))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, true}, p.Values)

	idx, err := d.IndicesWithinDistanceOfPoint(ctx, src, dst, geodistance.PerRow([]float64{20000, 100, 0, 200}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, idx)

	_, err = d.WithinDistanceOfPoint(ctx, src, dst, geodistance.PerRow([]float64{1, 2}))
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
}

func TestIndicesWithinDistanceAmongArray(t *testing.T) {
	ctx := context.Background()
	cs := geo.Coordinates{
		geo.NewLatLng(0, 0),
		geo.NewLatLng(0, 0.5),
		geo.NewLatLng(10, 10),
		geo.NewLatLng(0, 1),
	}

	for _, m := range models {
		d := newTestDispatcher(t, m)
		idx, err := d.IndicesWithinDistanceAmongArray(ctx, cs, 60)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 1}, {0, 1, 3}, {2}, {1, 3}}, idx, m.Name())

		pairs, err := d.IndicesWithinDistance(ctx, cs[:2], cs, 60)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 1}, {0, 1, 3}}, pairs, m.Name())
	}
}

func TestValidationBeforeCompute(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t, geodistance.Haversine{})
	good := randomCoordinates(5, 3)
	bad := geo.Coordinates{geo.NewLatLng(0, 0), geo.NewLatLng(91, 0)}

	_, err := d.DistanceFromPoint(ctx, geo.NewLatLng(math.NaN(), 0), good)
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))

	_, err = d.Distance(ctx, good, bad)
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))

	_, err = d.DistanceWithinArray(ctx, bad)
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))

	_, err = d.WithinDistance(ctx, good, good, -3)
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))

	_, err = d.WithinDistanceAmongArray(ctx, good, math.Inf(1))
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))

	_, err = d.Displace(ctx, good, geodistance.PerRow([]float64{1, 2}), geodistance.Scalar(0.0))
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
}

func TestDisplaceParallelMatchesSerial(t *testing.T) {
	ctx := context.Background()
	src := randomCoordinates(9, 3*testThreshold+1)
	distances := make([]float64, len(src))
	bearings := make([]float64, len(src))
	for i := range src {
		distances[i] = float64(i%50) * 13.7
		bearings[i] = float64(i*37%360) - 90
	}

	for _, m := range models {
		d := newTestDispatcher(t, m)
		got, err := d.Displace(ctx, src, geodistance.PerRow(distances), geodistance.PerRow(bearings))
		require.NoError(t, err)

		want, err := m.Displace(src, geodistance.PerRow(distances), geodistance.PerRow(bearings), d.Settings())
		require.NoError(t, err)
		assert.Equal(t, want.Coordinates, got.Coordinates)
		assert.Equal(t, len(src), got.Convergence.Cells)
	}
}

func TestDisplaceNonConvergence(t *testing.T) {
	ctx := context.Background()
	src := randomCoordinates(11, testThreshold)
	d := newTestDispatcher(t, geodistance.Vincenty{}, config.WithMaxIterations(1))

	got, err := d.Displace(ctx, src, geodistance.Scalar(2500.0), geodistance.Scalar(0.0))

	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrConvergence))
	assert.Len(t, got.Coordinates, testThreshold)
	assert.Equal(t, testThreshold, got.Convergence.Unconverged)
}

// panickyModel panics whenever a row starts at panicLat.
type panickyModel struct {
	geodistance.Haversine
	panicLat float64
}

func (m panickyModel) DistanceFromPointRad(srcLat, srcLng float64, dstLat, dstLng []float64, s config.Settings) ([]float64, geodistance.Convergence) {
	if srcLat == m.panicLat {
		panic("boom")
	}
	return m.Haversine.DistanceFromPointRad(srcLat, srcLng, dstLat, dstLng, s)
}

func TestWorkerPanicBecomesError(t *testing.T) {
	ctx := context.Background()
	cs := randomCoordinates(3, 10)
	model := panickyModel{panicLat: geo.DegToRad(cs[4].Lat)}
	d := newTestDispatcher(t, model, config.WithSerialThreshold(0))

	_, err := d.Distance(ctx, cs, cs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrInternalServerError))

	var m geodistance.Matrix
	require.NotPanics(t, func() {
		m, err = d.DistanceWithinArray(ctx, cs)
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrInternalServerError))
	assert.Empty(t, m.Data)

	_, err = d.IndicesWithinDistanceAmongArray(ctx, cs, 100)
	assert.True(t, errors.Is(err, pkg.ErrInternalServerError))
}

func TestDistanceWithinArrayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cs := randomCoordinates(4, 20)

	for _, threshold := range []int{0, 1 << 20} {
		d := newTestDispatcher(t, geodistance.Haversine{}, config.WithSerialThreshold(threshold))
		_, err := d.DistanceWithinArray(ctx, cs)
		assert.ErrorIs(t, err, context.Canceled, "serial threshold %d", threshold)
	}
}

func TestNearAntipodeReportsUnconverged(t *testing.T) {
	ctx := context.Background()
	src := geo.NewLatLng(0, 0)
	dst := randomCoordinates(11, 3*testThreshold)
	dst[37] = geo.NewLatLng(0.5, 179.7)

	for _, threshold := range []int{0, 1 << 20} {
		d := newTestDispatcher(t, geodistance.Vincenty{}, config.WithSerialThreshold(threshold))

		got, err := d.DistanceFromPoint(ctx, src, dst)
		require.NoError(t, err)
		require.Len(t, got.Values, len(dst))
		assert.Equal(t, len(dst), got.Convergence.Cells)
		assert.Equal(t, 1, got.Convergence.Unconverged)
		assert.Equal(t, config.MaxIterations, got.Convergence.Iterations)
		if v := got.Values[37]; !geodistance.IsMissing(v) {
			assert.False(t, math.IsInf(v, 0))
			assert.Greater(t, v, 0.0)
		}

		self, err := d.DistanceWithinArray(ctx, geo.Coordinates{src, dst[37], geo.NewLatLng(1, 1)})
		require.NoError(t, err)
		assert.Greater(t, self.Convergence.Unconverged, 0)
		assert.False(t, self.Convergence.Converged())
	}
}
