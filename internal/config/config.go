package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

type DBConfig struct {
	Driver       string // "postgres" or "sqlite"
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type ClockConfig struct {
	// AllowSimulated enables the X-Simulated-Time request header.
	// Never enable outside test environments.
	AllowSimulated bool
}

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	DB          DBConfig
	Clock       ClockConfig
}

var Module = fx.Module("config",
	fx.Provide(Load),
)

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("relay")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("RELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := Config{
		Environment: v.GetString("env"),
		LogLevel:    v.GetString("log.level"),
		HTTP: HTTPConfig{
			Addr:           v.GetString("http.addr"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		DB: DBConfig{
			Driver:       v.GetString("db.driver"),
			DSN:          v.GetString("db.dsn"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
		},
		Clock: ClockConfig{
			AllowSimulated: v.GetBool("clock.allow_simulated"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.DB.Driver == "" {
		cfg.DB.Driver = "postgres"
	}
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 25
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 5
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		return fmt.Errorf("RELAY_DB_DSN is required")
	}
	return nil
}
