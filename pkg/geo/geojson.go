package geo

import (
	"os"

	"github.com/lintang-b-s/geodistances/pkg"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ParseGeoJSON extracts every Point (and every member of a MultiPoint) from a
// GeoJSON FeatureCollection, in feature order. Other geometry types are skipped.
func ParseGeoJSON(data []byte) (Coordinates, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Coordinates{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "invalid geojson feature collection")
	}

	coords := Coordinates{}
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Point:
			coords = append(coords, NewLatLng(g[1], g[0]))
		case orb.MultiPoint:
			for _, p := range g {
				coords = append(coords, NewLatLng(p[1], p[0]))
			}
		}
	}
	return coords, nil
}

func LoadGeoJSON(path string) (Coordinates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Coordinates{}, pkg.WrapErrorf(err, pkg.ErrNotFound, "cannot read geojson file %s", path)
	}
	return ParseGeoJSON(data)
}
