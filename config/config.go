package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	App struct {
		Host     string
		Port     int
		BasePath string `toml:"base_path"`
	}
	Storage struct {
		Driver       string
		ResetOnStart bool `toml:"reset_on_start"`
		LogQueries   bool `toml:"log_queries"`
		// DatabaseURL overrides the Database section when set.
		DatabaseURL string `toml:"database_url"`
	}
	Database pg.Options
	Redis    struct {
		Addr     string
		Password string
		DB       int
		Prefix   string
	}
}

// Default returns the configuration used for keys missing from the file.
func Default() Config {
	var cfg Config
	cfg.App.Host = "0.0.0.0"
	cfg.App.Port = 3000
	cfg.App.BasePath = "/api"
	cfg.Storage.Driver = DriverMemory
	cfg.Database.Addr = "localhost:5432"
	cfg.Database.MaxRetries = 3
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.Prefix = "campus-reading"

	return cfg
}

// Load decodes the TOML file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.resolveDatabaseURL(); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) resolveDatabaseURL() error {
	if c.Storage.DatabaseURL == "" {
		return nil
	}

	opt, err := pg.ParseURL(c.Storage.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = c.Database.MaxRetries
	opt.PoolSize = c.Database.PoolSize
	c.Database = *opt

	return nil
}

func (c Config) Validate() error {
	var errs []error

	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("app.port %d is out of range", c.App.Port))
	}

	switch c.Storage.Driver {
	case DriverMemory, DriverPostgres, DriverRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	if c.Storage.Driver == DriverRedis && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required for the redis driver"))
	}

	return errors.Join(errs...)
}
