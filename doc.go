// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the hackathon registry API server.

The registry tracks participants, their self-rated skills, hardware loans and
event attendance scans in a single SQLite or PostgreSQL database.

# Starting the Server

With no configuration the server listens on port 3000 and uses a local
SQLite file:

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

# Configuration

Settings come from flags, then the environment, then an optional .env file:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN (default: file:hackers.db; required for postgres)
  - METRICS_ENABLED (-metrics): Serve /metrics (default: true)

# Architecture

  - handlers: HTTP request handlers (users, skills, hardware, events)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request ids, metrics, JSON helpers
  - store: SQL and transactions
  - models: Request/response types
  - metrics: Prometheus manager
  - db: Connection and schema creation
  - cliparse: Configuration parsing
  - seed: Bulk import used by cmd/seed

See package documentation for each component.
*/
package main
