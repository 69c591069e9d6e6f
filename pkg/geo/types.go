package geo

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/geodistances/pkg"
)

// LatLng model info
//
//	@Description	a coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat" msgpack:"lat" validate:"min=-90,max=90"` // latitude in degrees, [-90, 90]
	Lng float64 `json:"lng" msgpack:"lng"`                          // longitude in degrees, normalized to (-180, 180]
}

func NewLatLng(lat, lng float64) LatLng {
	return LatLng{
		Lat: lat,
		Lng: lng,
	}
}

func (p LatLng) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lat, p.Lng)
}

// Radians returns latitude and longitude in radians.
func (p LatLng) Radians() (float64, float64) {
	return DegToRad(p.Lat), DegToRad(p.Lng)
}

// Normalize wraps the longitude into (-180, 180]. Latitudes past a pole are
// reflected back over it, which moves the point to the opposite meridian.
func (p LatLng) Normalize() LatLng {
	lat, lng := p.Lat, p.Lng
	if lat > MaxLat || lat < MinLat {
		lat = math.Mod(lat+90, 360)
		if lat < 0 {
			lat += 360
		}
		lat -= 90
		// lat is now in [-90, 270)
		if lat > MaxLat {
			lat = 180 - lat
			lng += 180
		}
	}
	return LatLng{Lat: lat, Lng: NormalizeLng(lng)}
}

// NormalizeLng maps any longitude in degrees into (-180, 180].
func NormalizeLng(lng float64) float64 {
	lng = math.Mod(lng, 360)
	if lng > 180 {
		lng -= 360
	} else if lng <= -180 {
		lng += 360
	}
	return lng
}

// NormalizeBearing maps any bearing in degrees into [0, 360).
func NormalizeBearing(bearing float64) float64 {
	bearing = math.Mod(bearing, 360)
	if bearing < 0 {
		bearing += 360
	}
	if bearing >= 360 {
		bearing = 0
	}
	return bearing
}

func (p LatLng) Validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "coordinate %s is not finite", p)
	}
	if p.Lat < MinLat || p.Lat > MaxLat {
		return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "latitude of %s must be between %v and %v", p, MinLat, MaxLat)
	}
	return nil
}

// Coordinates is an ordered array of coordinates; the position of a
// coordinate is its row (or column) index in every result computed from it.
type Coordinates []LatLng

func NewCoordinates(lats, lngs []float64) (Coordinates, error) {
	if len(lats) != len(lngs) {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
			"got %d latitudes but %d longitudes", len(lats), len(lngs))
	}
	cs := make(Coordinates, len(lats))
	for i := range lats {
		cs[i] = NewLatLng(lats[i], lngs[i])
	}
	return cs, nil
}

func (cs Coordinates) Len() int {
	return len(cs)
}

// Radians returns the latitude and longitude columns in radians.
func (cs Coordinates) Radians() (lats []float64, lngs []float64) {
	lats = make([]float64, len(cs))
	lngs = make([]float64, len(cs))
	for i, p := range cs {
		lats[i], lngs[i] = p.Radians()
	}
	return lats, lngs
}

func (cs Coordinates) Validate() error {
	for i, p := range cs {
		if err := p.Validate(); err != nil {
			return pkg.WrapErrorf(err, pkg.ErrBadParamInput, "invalid coordinate at index %d", i)
		}
	}
	return nil
}

// Normalize returns a normalized copy; the receiver is left untouched.
func (cs Coordinates) Normalize() Coordinates {
	out := make(Coordinates, len(cs))
	for i, p := range cs {
		out[i] = p.Normalize()
	}
	return out
}

// FromRadians builds coordinates from radian columns, normalizing every point.
func FromRadians(lats, lngs []float64) Coordinates {
	cs := make(Coordinates, len(lats))
	for i := range lats {
		cs[i] = NewLatLng(RadToDeg(lats[i]), RadToDeg(lngs[i])).Normalize()
	}
	return cs
}
