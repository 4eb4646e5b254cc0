// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const (
	defaultPort        = 3000
	defaultDatabaseURL = "file:hackers.db"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	MetricsEnabled bool
}

// ParseFlags validates flags and fills the rest from the environment.
// A .env file in the working directory is loaded first if present;
// variables already set in the process environment win over it.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("hackathon-registry", flag.ContinueOnError)

	envFile := fs.String("env-file", ".env", "Path to an optional .env file")
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", true, "Expose /metrics")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	metricsSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "metrics" {
			metricsSet = true
		}
	})

	if err := LoadEnvFile(*envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}

	if err := ResolveDatabase(&cfg); err != nil {
		return Config{}, err
	}

	if !metricsSet {
		if metricsStr := os.Getenv("METRICS_ENABLED"); metricsStr != "" {
			enabled, err := strconv.ParseBool(metricsStr)
			if err != nil {
				return Config{}, errors.New("invalid METRICS_ENABLED value")
			}
			cfg.MetricsEnabled = enabled
		}
	}

	return cfg, nil
}

// LoadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.New("failed to load env file " + path + ": " + err.Error())
	}
	return nil
}

// ResolveDatabase fills an empty DatabaseType and DatabaseURL from
// DATABASE_TYPE and DATABASE_URL, then from the defaults, and validates the
// result. The server and the seed tool share it so both open the same database.
func ResolveDatabase(cfg *Config) error {
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultDatabaseURL
	}

	return nil
}
