package http_router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lintang-b-s/geodistances/docs"
	"github.com/lintang-b-s/geodistances/pkg/http/http-router/controllers"
	router_helper "github.com/lintang-b-s/geodistances/pkg/http/http-router/router-helper"
	http_server "github.com/lintang-b-s/geodistances/pkg/http/server"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler wires the routes and the middleware chain around them.
func (api *API) Handler(geoDistanceService controllers.GeoDistanceService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	group := router_helper.NewRouteGroup(router, "/api")

	geoDistanceRoutes := controllers.New(geoDistanceService, api.log)
	geoDistanceRoutes.Routes(group)

	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.WrapHandler)

	return alice.New(corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log), Labels).Then(router)
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,

	geoDistanceService controllers.GeoDistanceService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(geoDistanceService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	errC := make(chan error, 1)
	go func() {
		errC <- srv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	api.log.Info("shutting down API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errC; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
