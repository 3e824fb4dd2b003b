package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all service settings, read from configs/app.env with
// environment-variable overrides.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	DatasetPath   string `mapstructure:"DATASET_PATH"`
	GinMode       string `mapstructure:"GIN_MODE"`
}

// LoadConfig reads configuration from the app.env file in the given directory.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		return
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	if config.ServerAddress == "" {
		config.ServerAddress = "0.0.0.0:8080"
	}
	if config.GinMode == "" {
		config.GinMode = "release"
	}
	if config.DatasetPath == "" {
		err = fmt.Errorf("config: DATASET_PATH is required")
	}
	return
}
