package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

type ServerConfig struct {
	Addr       string `mapstructure:"addr"`
	Mode       string `mapstructure:"mode"`
	CORSOrigin string `mapstructure:"corsOrigin"`
}

type SeedConfig struct {
	// File is an optional JSON seed dataset; empty means the built-in
	// fixtures are served.
	File string `mapstructure:"file"`
}

// LoadConfig loads configuration from config.yaml and environment
// variables. A missing config file is not an error: the daemon runs on
// defaults with zero setup.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("/etc/oriondesk/")

	v.SetEnvPrefix("ORIONDESK")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.corsOrigin", "*")
	v.SetDefault("seed.file", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
