package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backends a Config can select.
const (
	BackendAPI   = "api"
	BackendMongo = "mongo"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Backend  string         `mapstructure:"backend"`
	API      APIConfig      `mapstructure:"api"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// APIConfig points at the DragonFit REST API.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DatabaseConfig is used by the self-hosted backend. UserID scopes every
// document read or written.
type DatabaseConfig struct {
	URI    string `mapstructure:"uri"`
	Name   string `mapstructure:"name"`
	UserID string `mapstructure:"user_id"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// LoadConfig reads config.yaml from path and overlays environment variables
// (api.base_url -> API_BASE_URL).
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("backend", BackendAPI)
	v.SetDefault("api.base_url", "http://localhost:8001")
	v.SetDefault("api.token", "")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "dragonfit")
	v.SetDefault("database.user_id", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	// A missing file is fine: defaults and env vars may be enough.
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}
	return config, config.Validate()
}

// Validate checks the keys the selected backend needs.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendAPI:
		if c.API.BaseURL == "" {
			return errors.New("config: api.base_url is required for the api backend")
		}
	case BackendMongo:
		if c.Database.URI == "" || c.Database.Name == "" {
			return errors.New("config: database.uri and database.name are required for the mongo backend")
		}
		if c.Database.UserID == "" {
			return errors.New("config: database.user_id is required for the mongo backend")
		}
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	return nil
}
