// Package geodistance implements the distance models: great-circle distance on
// a sphere (Haversine) and geodesic distance on an ellipsoid (Vincenty). Every
// model computes serially; pkg/dispatch parallelizes over them.
package geodistance

import (
	"sort"
	"strings"

	"github.com/lintang-b-s/geodistances/pkg"
	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/geo"
)

// Model is a distance model. Distances are in km, bearings in degrees
// clockwise from north.
type Model interface {
	Name() string

	// DistanceFromPointRad works on radian columns and returns distances in
	// model units; multiply by Scale to get km.
	DistanceFromPointRad(srcLat, srcLng float64, dstLat, dstLng []float64, s config.Settings) ([]float64, Convergence)
	Scale(s config.Settings) float64

	DistanceFromPoint(src geo.LatLng, dst geo.Coordinates, s config.Settings) Distances
	Distance(src, dst geo.Coordinates, s config.Settings) Matrix
	WithinDistance(src, dst geo.Coordinates, threshold float64, s config.Settings) (BoolMatrix, error)

	// Displace moves each source row by its distance along its bearing.
	Displace(src geo.Coordinates, distance, bearing RowParam[float64], s config.Settings) (Displaced, error)
}

type radianModel interface {
	DistanceFromPointRad(srcLat, srcLng float64, dstLat, dstLng []float64, s config.Settings) ([]float64, Convergence)
	Scale(s config.Settings) float64
}

func distanceFromPoint(m radianModel, src geo.LatLng, dst geo.Coordinates, s config.Settings) Distances {
	s = s.OrDefault()
	srcLat, srcLng := src.Radians()
	dstLat, dstLng := dst.Radians()

	values, conv := m.DistanceFromPointRad(srcLat, srcLng, dstLat, dstLng, s)
	scale := m.Scale(s)
	for j := range values {
		values[j] = sentinel(values[j] * scale)
	}
	return Distances{Values: values, Convergence: conv}
}

// distance fills the matrix one source row at a time. Destinations are
// converted to radians once.
func distance(m radianModel, src, dst geo.Coordinates, s config.Settings) Matrix {
	s = s.OrDefault()
	srcLat, srcLng := src.Radians()
	dstLat, dstLng := dst.Radians()

	out := NewMatrix(len(src), len(dst))
	for i := range src {
		row, conv := m.DistanceFromPointRad(srcLat[i], srcLng[i], dstLat, dstLng, s)
		copy(out.Row(i), row)
		out.Convergence = out.Convergence.Merge(conv)
	}
	out.Scale(m.Scale(s))
	return out
}

func withinDistance(m radianModel, src, dst geo.Coordinates, threshold float64, s config.Settings) (BoolMatrix, error) {
	if err := ValidateThreshold(Scalar(threshold), len(src)); err != nil {
		return BoolMatrix{}, err
	}
	return distance(m, src, dst, s).WithinDistance(threshold)
}

// ValidateThreshold checks a threshold against n rows. Thresholds must be
// finite and non-negative.
func ValidateThreshold(threshold RowParam[float64], n int) error {
	if err := threshold.Validate(n, "threshold"); err != nil {
		return err
	}
	return threshold.NonNegative("threshold")
}

// ValidateDisplacement checks distance and bearing against n source rows.
// Distances must be finite and non-negative; bearings only finite.
func ValidateDisplacement(n int, distance, bearing RowParam[float64]) error {
	if err := distance.Validate(n, "distance"); err != nil {
		return err
	}
	if err := distance.NonNegative("distance"); err != nil {
		return err
	}
	return bearing.Validate(n, "bearing")
}

var models = map[string]Model{}

func register(m Model) {
	models[m.Name()] = m
}

func init() {
	register(Haversine{})
	register(Vincenty{})
}

// DefaultModel is used when no model name is given.
const DefaultModel = "haversine"

// Lookup returns the model registered under name, case-insensitively. An
// empty name returns DefaultModel.
func Lookup(name string) (Model, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultModel
	}
	m, ok := models[name]
	if !ok {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown distance model %q, available: %s",
			name, strings.Join(Names(), ", "))
	}
	return m, nil
}

func Names() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
