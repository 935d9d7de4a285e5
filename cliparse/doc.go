// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv), so
local development does not need exported variables.

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: Connection string or SQLite path (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - CORSOrigin: Allowed origin for the dashboard (default: http://localhost:5173)
  - LogLevel: debug, info, warn, or error (default: info)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-cors-origin  Allowed CORS origin
	-log          Log level

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CORS_ORIGIN   → -cors-origin
	LOG_LEVEL     → -log

CLI flags take precedence over environment variables, which take
precedence over the .env file.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
