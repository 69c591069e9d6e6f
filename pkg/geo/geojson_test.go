package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeoJSON(t *testing.T) {
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [110.81, -7.56]}},
			{"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}},
			{"type": "Feature", "properties": {}, "geometry": {"type": "MultiPoint", "coordinates": [[1, 2], [3, 4]]}}
		]
	}`)

	coords, err := ParseGeoJSON(data)
	require.NoError(t, err)
	assert.Equal(t, Coordinates{{-7.56, 110.81}, {2, 1}, {4, 3}}, coords)

	_, err = ParseGeoJSON([]byte("not json"))
	assert.Error(t, err)
}
