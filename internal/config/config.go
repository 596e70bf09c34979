package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/karadarhythm/health-api/internal/model"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Targets   model.NutritionTargets `mapstructure:"targets"`
	Profile   model.UserProfile      `mapstructure:"profile"`
	RateLimit RateLimitConfig        `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// envOverrides holds the settings operators most often need to change
// per deployment without touching the YAML file. Processed with the
// HEALTH_ prefix, e.g. HEALTH_DB_PASSWORD.
type envOverrides struct {
	Port       int    `envconfig:"PORT"`
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     int    `envconfig:"DB_PORT"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSSLMode  string `envconfig:"DB_SSLMODE"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("health", &env); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}
	applyOverrides(&config, env)

	applyDefaults(&config)
	return &config, nil
}

func applyOverrides(cfg *Config, env envOverrides) {
	if env.Port != 0 {
		cfg.Server.Port = env.Port
	}
	if env.DBHost != "" {
		cfg.Database.Host = env.DBHost
	}
	if env.DBPort != 0 {
		cfg.Database.Port = env.DBPort
	}
	if env.DBUser != "" {
		cfg.Database.User = env.DBUser
	}
	if env.DBPassword != "" {
		cfg.Database.Password = env.DBPassword
	}
	if env.DBName != "" {
		cfg.Database.Name = env.DBName
	}
	if env.DBSSLMode != "" {
		cfg.Database.SSLMode = env.DBSSLMode
	}
}

// applyDefaults fills the sections a minimal config file may omit.
// Target and profile defaults match the values the advisory and risk
// components were tuned against.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.TimeoutSeconds == 0 {
		cfg.Server.TimeoutSeconds = 30
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 50
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 100
	}
	if cfg.Targets == (model.NutritionTargets{}) {
		cfg.Targets = model.DefaultNutritionTargets()
	}
	if cfg.Profile == (model.UserProfile{}) {
		cfg.Profile = model.DefaultUserProfile()
	}
}
