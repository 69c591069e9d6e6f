package settings_di

import (
	"github.com/lintang-b-s/geodistances/pkg"
	"github.com/lintang-b-s/geodistances/pkg/config"
	di_config "github.com/lintang-b-s/geodistances/pkg/di/config"
	"github.com/lintang-b-s/geodistances/pkg/http/usecases"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New builds the service configuration from the GEO_* keys.
func New(_ *di_config.Config, log *zap.Logger) (usecases.Config, error) {
	viper.SetDefault("CACHE_WRITERS", 2)

	settings, err := config.FromViper(viper.GetViper())
	if err != nil {
		return usecases.Config{}, err
	}
	if err := settings.Explain(zap.NewStdLog(log).Writer()); err != nil {
		return usecases.Config{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "cannot log settings")
	}

	return usecases.Config{
		Settings:     settings,
		DefaultModel: viper.GetString(config.KeyModel),
		CacheWriters: viper.GetInt("CACHE_WRITERS"),
	}, nil
}
