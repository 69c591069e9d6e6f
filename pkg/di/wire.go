//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/geodistances/pkg/di/config"
	shortcontext "github.com/lintang-b-s/geodistances/pkg/di/context"
	kv_di "github.com/lintang-b-s/geodistances/pkg/di/kv"
	logger_di "github.com/lintang-b-s/geodistances/pkg/di/logger"
	service_di "github.com/lintang-b-s/geodistances/pkg/di/service"
	settings_di "github.com/lintang-b-s/geodistances/pkg/di/settings"
	geoHttp "github.com/lintang-b-s/geodistances/pkg/http"
	"github.com/lintang-b-s/geodistances/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/geodistances/pkg/http/usecases"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	settings_di.New,
)

var geoDistanceSet = wire.NewSet(
	defaultSet,
	service_di.New,
	wire.Bind(new(controllers.GeoDistanceService), new(*usecases.GeoDistanceService)),
	NewGeoDistanceAPIServer,
)

func NewGeoDistanceAPIServer(ctx context.Context, log *zap.Logger,
	geoDistanceService controllers.GeoDistanceService) (*geoHttp.Server, error) {
	api := geoHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, geoDistanceService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeGeoDistanceService() (*geoHttp.Server, func(), error) {

	panic(wire.Build(geoDistanceSet))
}
