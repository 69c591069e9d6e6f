package geo

import (
	"math"
	"strconv"
	"strings"

	"github.com/lintang-b-s/geodistances/pkg"
)

type BoundingBox struct {
	min, max LatLng
}

func (bb *BoundingBox) GetMin() LatLng {
	return bb.min
}

func (bb *BoundingBox) GetMax() LatLng {
	return bb.max
}

// NewBoundingBox returns the lat/lng envelope of cs. An empty array yields a
// zero box.
func NewBoundingBox(cs Coordinates) BoundingBox {
	if len(cs) == 0 {
		return BoundingBox{}
	}
	min, max := cs[0], cs[0]
	for i := 1; i < len(cs); i++ {
		min.Lat = math.Min(min.Lat, cs[i].Lat)
		max.Lat = math.Max(max.Lat, cs[i].Lat)
		min.Lng = math.Min(min.Lng, cs[i].Lng)
		max.Lng = math.Max(max.Lng, cs[i].Lng)
	}
	return BoundingBox{
		min: min,
		max: max,
	}
}

// NewBoundingBoxFromCorners builds the box spanning min and max.
func NewBoundingBoxFromCorners(min, max LatLng) BoundingBox {
	return NewBoundingBox(Coordinates{min, max})
}

func (bb *BoundingBox) Contains(p LatLng) bool {
	if p.Lat < bb.min.Lat || p.Lat > bb.max.Lat {
		return false
	}
	if p.Lng < bb.min.Lng || p.Lng > bb.max.Lng {
		return false
	}
	return true
}

func (bb *BoundingBox) PointsContains(cs Coordinates) bool {
	for _, p := range cs {
		if !bb.Contains(p) {
			return false
		}
	}
	return true
}

// Filter keeps the points of cs that lie in the box, in order, along with
// their indices in cs.
func (bb *BoundingBox) Filter(cs Coordinates) (Coordinates, []int) {
	idx := make([]int, 0, len(cs))
	if bb.PointsContains(cs) {
		for i := range cs {
			idx = append(idx, i)
		}
		return cs, idx
	}

	kept := make(Coordinates, 0, len(cs))
	for i, p := range cs {
		if bb.Contains(p) {
			kept = append(kept, p)
			idx = append(idx, i)
		}
	}
	return kept, idx
}

// https://www.movable-type.co.uk/scripts/latlong.html
func MidPoint(a, b LatLng) LatLng {
	p1LatRad := DegToRad(a.Lat)
	p2LatRad := DegToRad(b.Lat)

	diffLon := DegToRad(b.Lng - a.Lng)

	bx := math.Cos(p2LatRad) * math.Cos(diffLon)
	by := math.Cos(p2LatRad) * math.Sin(diffLon)

	newLon := DegToRad(a.Lng) + math.Atan2(by, math.Cos(p1LatRad)+bx)
	newLat := math.Atan2(math.Sin(p1LatRad)+math.Sin(p2LatRad), math.Sqrt((math.Cos(p1LatRad)+bx)*(math.Cos(p1LatRad)+bx)+by*by))

	return NewLatLng(RadToDeg(newLat), RadToDeg(newLon)).Normalize()
}

// Center is the midpoint of the box diagonal.
func (bb *BoundingBox) Center() LatLng {
	return MidPoint(bb.min, bb.max)
}

// ParseBoundingBox reads a "minLat,minLng,maxLat,maxLng" box in degrees.
func ParseBoundingBox(s string) (BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "bounding box %q needs minLat,minLng,maxLat,maxLng", s)
	}
	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BoundingBox{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "bounding box %q", s)
		}
		v[i] = f
	}
	min, max := NewLatLng(v[0], v[1]), NewLatLng(v[2], v[3])
	if err := min.Validate(); err != nil {
		return BoundingBox{}, err
	}
	if err := max.Validate(); err != nil {
		return BoundingBox{}, err
	}
	return NewBoundingBoxFromCorners(min, max), nil
}
