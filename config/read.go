package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configFormat = "yaml"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(configName)
	viper.SetConfigType(configFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. CITADELS_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix("CITADELS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Read the config file (optional in container environments)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if os.Getenv("CITADELS_DATABASE_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.pool.max_open_conns", 25)
	viper.SetDefault("database.pool.max_idle_conns", 5)
	viper.SetDefault("database.pool.conn_max_lifetime_minutes", 30)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("authentication.session_ttl_minutes", 720)
	viper.SetDefault("authorization.enable_audit", true)
	viper.SetDefault("authorization.cache_ttl_seconds", 30)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output.stdout", true)
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}
