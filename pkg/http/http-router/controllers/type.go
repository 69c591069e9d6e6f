package controllers

import (
	"context"

	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/geo"
	"github.com/lintang-b-s/geodistances/pkg/geodistance"
)

type GeoDistanceService interface {
	Settings() config.Settings
	Models() []string

	DistanceFromPoint(ctx context.Context, model string, src geo.LatLng, dst geo.Coordinates) (geodistance.Distances, error)
	Distance(ctx context.Context, model string, src, dst geo.Coordinates) (geodistance.Matrix, error)
	DistanceWithinArray(ctx context.Context, model string, cs geo.Coordinates) (geodistance.Matrix, error)

	WithinDistanceOfPoint(ctx context.Context, model string, src geo.LatLng, dst geo.Coordinates, threshold geodistance.RowParam[float64]) (geodistance.Proximity, error)
	WithinDistance(ctx context.Context, model string, src, dst geo.Coordinates, threshold float64) (geodistance.BoolMatrix, error)
	WithinDistanceAmongArray(ctx context.Context, model string, cs geo.Coordinates, threshold float64) (geodistance.BoolMatrix, error)

	IndicesWithinDistanceOfPoint(ctx context.Context, model string, src geo.LatLng, dst geo.Coordinates, threshold geodistance.RowParam[float64]) ([]int, error)
	IndicesWithinDistance(ctx context.Context, model string, src, dst geo.Coordinates, threshold float64) ([][]int, error)
	IndicesWithinDistanceAmongArray(ctx context.Context, model string, cs geo.Coordinates, threshold float64) ([][]int, error)

	Displace(ctx context.Context, model string, src geo.Coordinates, distance, bearing geodistance.RowParam[float64]) (geodistance.Displaced, error)
}
