package kv_di

import (
	di_config "github.com/lintang-b-s/geodistances/pkg/di/config"
	"github.com/lintang-b-s/geodistances/pkg/kvdb"

	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// New opens the result cache. It returns a nil store when CACHE_ENABLED is false.
func New(_ *di_config.Config, log *zap.Logger) (*kvdb.KVDB, func(), error) {
	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_DB_PATH", "geodistances_cache.db")

	if !viper.GetBool("CACHE_ENABLED") {
		log.Info("result cache disabled")
		return nil, func() {}, nil
	}

	path := viper.GetString("CACHE_DB_PATH")
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, nil, err
	}

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	log.Info("result cache opened", zap.String("path", path))

	cleanup := func() {
		_ = db.Close()
	}

	return bboltKV, cleanup, nil
}
