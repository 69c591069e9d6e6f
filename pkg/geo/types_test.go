package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/lintang-b-s/geodistances/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   LatLng
		want LatLng
	}{
		{"unchanged", NewLatLng(12.5, -45), NewLatLng(12.5, -45)},
		{"lng 180 kept", NewLatLng(0, 180), NewLatLng(0, 180)},
		{"lng -180 flips", NewLatLng(0, -180), NewLatLng(0, 180)},
		{"lng past 180", NewLatLng(10, 190), NewLatLng(10, -170)},
		{"lng many turns", NewLatLng(10, 720+45), NewLatLng(10, 45)},
		{"negative lng turns", NewLatLng(10, -370), NewLatLng(10, -10)},
		{"lat past north pole", NewLatLng(100, 10), NewLatLng(80, -170)},
		{"lat past south pole", NewLatLng(-100, 10), NewLatLng(-80, -170)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.InDelta(t, tt.want.Lat, got.Lat, 1e-9)
			assert.InDelta(t, tt.want.Lng, got.Lng, 1e-9)
		})
	}
}

func TestNormalizeBearing(t *testing.T) {
	assert.InDelta(t, 90.0, NormalizeBearing(450), 1e-12)
	assert.InDelta(t, 270.0, NormalizeBearing(-90), 1e-12)
	assert.Equal(t, 0.0, NormalizeBearing(360))
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, Coordinates{{0, 0}, {90, 180}, {-90, -180}}.Validate())
	})

	t.Run("latitude out of range", func(t *testing.T) {
		err := Coordinates{{0, 0}, {91, 0}}.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
	})

	t.Run("not finite", func(t *testing.T) {
		err := NewLatLng(math.NaN(), 0).Validate()
		assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
	})
}

func TestNewCoordinates(t *testing.T) {
	cs, err := NewCoordinates([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, Coordinates{{1, 3}, {2, 4}}, cs)

	lats, lngs := cs.Radians()
	assert.InDelta(t, math.Pi/180, lats[0], 1e-15)
	assert.InDelta(t, 4*math.Pi/180, lngs[1], 1e-15)

	_, err = NewCoordinates([]float64{1}, []float64{})
	assert.True(t, errors.Is(err, pkg.ErrBadParamInput))
}
