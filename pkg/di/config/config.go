package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// File is the config file that was read, empty when only the environment is used.
	File string
}

// New reads config.yaml from the working directory when present. Environment
// variables override it either way.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if errors.As(err, &typeErr) {
			return &Config{}, nil
		}

		return nil, err
	}

	config := &Config{File: viper.ConfigFileUsed()}
	return config, nil
}
