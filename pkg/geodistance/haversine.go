package geodistance

import (
	"math"

	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/geo"
)

// Haversine is great-circle distance on a sphere of radius
// Settings.SphericalRadius. It is closed form and always converges.
type Haversine struct{}

func (Haversine) Name() string {
	return "haversine"
}

// https://scikit-learn.org/stable/modules/generated/sklearn.metrics.pairwise.haversine_distances.html
// sin^2(a/2)
func havFunction(angleRad float64) float64 {
	s := math.Sin(angleRad / 2.0)
	return s * s
}

// DistanceFromPointRad returns central angles in radians.
func (Haversine) DistanceFromPointRad(srcLat, srcLng float64, dstLat, dstLng []float64, _ config.Settings) ([]float64, Convergence) {
	out := make([]float64, len(dstLat))
	cosSrcLat := math.Cos(srcLat)
	for j := range dstLat {
		h := havFunction(dstLat[j]-srcLat) + cosSrcLat*math.Cos(dstLat[j])*havFunction(dstLng[j]-srcLng)
		out[j] = 2.0 * math.Asin(math.Sqrt(math.Min(1, h)))
	}
	return out, Convergence{Cells: len(out), Iterations: 0}
}

func (Haversine) Scale(s config.Settings) float64 {
	return s.OrDefault().SphericalRadius()
}

func (h Haversine) DistanceFromPoint(src geo.LatLng, dst geo.Coordinates, s config.Settings) Distances {
	return distanceFromPoint(h, src, dst, s)
}

func (h Haversine) Distance(src, dst geo.Coordinates, s config.Settings) Matrix {
	return distance(h, src, dst, s)
}

func (h Haversine) WithinDistance(src, dst geo.Coordinates, threshold float64, s config.Settings) (BoolMatrix, error) {
	return withinDistance(h, src, dst, threshold, s)
}

// Displace solves the direct problem on the sphere.
// https://www.movable-type.co.uk/scripts/latlong.html
func (Haversine) Displace(src geo.Coordinates, distance, bearing RowParam[float64], s config.Settings) (Displaced, error) {
	if err := ValidateDisplacement(len(src), distance, bearing); err != nil {
		return Displaced{}, err
	}
	s = s.OrDefault()
	radius := s.SphericalRadius()

	lats, lngs := src.Radians()
	outLat := make([]float64, len(src))
	outLng := make([]float64, len(src))
	for i := range src {
		delta := distance.At(i) / radius
		theta := geo.DegToRad(geo.NormalizeBearing(bearing.At(i)))
		sinLat, cosLat := math.Sincos(lats[i])
		sinDelta, cosDelta := math.Sincos(delta)
		sinTheta, cosTheta := math.Sincos(theta)

		sinLat2 := sinLat*cosDelta + cosLat*sinDelta*cosTheta
		sinLat2 = math.Max(-1, math.Min(1, sinLat2))
		outLat[i] = math.Asin(sinLat2)
		outLng[i] = lngs[i] + math.Atan2(sinTheta*sinDelta*cosLat, cosDelta-sinLat*sinLat2)
	}

	return Displaced{
		Coordinates: geo.FromRadians(outLat, outLng),
		Convergence: Convergence{Cells: len(src)},
	}, nil
}
