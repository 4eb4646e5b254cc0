// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Connection string (default for sqlite: file:hackers.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - MetricsEnabled: Serve Prometheus metrics on /metrics (default: true)

# CLI Flags

	-p         Server port
	-d         Database URL
	-t         Database type
	-metrics   Enable or disable /metrics
	-env-file  Optional .env file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	METRICS_ENABLED → -metrics

Values from the .env file are only applied for variables that are not
already set in the process environment. CLI flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or is out of range
  - the database type is not sqlite or postgres
  - postgres is selected without a DATABASE_URL
*/
package cliparse
