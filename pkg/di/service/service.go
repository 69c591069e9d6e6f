package service_di

import (
	"github.com/lintang-b-s/geodistances/pkg/http/usecases"
	"github.com/lintang-b-s/geodistances/pkg/kvdb"

	"go.uber.org/zap"
)

// New builds the service and returns Close as its cleanup.
func New(log *zap.Logger, cfg usecases.Config, db *kvdb.KVDB) (*usecases.GeoDistanceService, func(), error) {
	var cache usecases.ResultCache
	if db != nil {
		cache = db
	}

	svc, err := usecases.New(log, cfg, cache)
	if err != nil {
		return nil, nil, err
	}
	return svc, svc.Close, nil
}
