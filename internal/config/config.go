package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress      = ":8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultUpstreamTimeout = 15 * time.Second
	defaultFinanceURL      = "http://localhost:8081"
	defaultFleetURL        = "http://localhost:8082"
	defaultAuthURL         = "http://localhost:8083"
	defaultNotificationURL = "http://localhost:8084"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env      string
	Server   Server
	Logger   Logger
	Upstream Upstream
}

type Server struct {
	RunAddress      string        `mapstructure:"run_address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Logger struct {
	LogLevel string `mapstructure:"log_level"`
}

// Upstream holds the base URLs of the microservices the gateway fronts.
type Upstream struct {
	FinanceURL      string        `mapstructure:"finance_service_url"`
	FleetURL        string        `mapstructure:"fleet_service_url"`
	AuthURL         string        `mapstructure:"auth_service_url"`
	NotificationURL string        `mapstructure:"notification_service_url"`
	Timeout         time.Duration `mapstructure:"upstream_timeout"`
}

// Load reads configuration from the environment, an optional .env file and an
// optional config file. Environment variables take precedence over the file.
func Load(configFile string) (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("log_level", "")
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("upstream_timeout", defaultUpstreamTimeout)
	v.SetDefault("finance_service_url", defaultFinanceURL)
	v.SetDefault("fleet_service_url", defaultFleetURL)
	v.SetDefault("auth_service_url", defaultAuthURL)
	v.SetDefault("notification_service_url", defaultNotificationURL)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("app_env"),
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Logger: Logger{LogLevel: v.GetString("log_level")},
		Upstream: Upstream{
			FinanceURL:      v.GetString("finance_service_url"),
			FleetURL:        v.GetString("fleet_service_url"),
			AuthURL:         v.GetString("auth_service_url"),
			NotificationURL: v.GetString("notification_service_url"),
			Timeout:         v.GetDuration("upstream_timeout"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.RunAddress == "" {
		return fmt.Errorf("%w: run_address must not be empty", ErrInvalidConfig)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("%w: upstream_timeout must be positive", ErrInvalidConfig)
	}

	services := map[string]string{
		"finance_service_url":      c.Upstream.FinanceURL,
		"fleet_service_url":        c.Upstream.FleetURL,
		"auth_service_url":         c.Upstream.AuthURL,
		"notification_service_url": c.Upstream.NotificationURL,
	}
	for name, raw := range services {
		u, err := url.Parse(raw)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("%w: %s must be an absolute URL, got %q", ErrInvalidConfig, name, raw)
		}
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
