package main

import (
	"log"

	"github.com/lintang-b-s/geodistances/pkg/di"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

//	@title			geodistances API
//	@version		1.0
//	@description	vectorized great-circle and ellipsoidal distance calculations.

//	@host		localhost:6060
//	@BasePath	/

func main() {
	_ = godotenv.Load()

	server, cleanup, err := di.InitializeGeoDistanceService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Wait(); err != nil {
		server.Log.Error("server stopped", zap.Error(err))
	}
}
