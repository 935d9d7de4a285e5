// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the EEG pipeline API server.

The pipeline ingests chunked EEG time-series from bedside acquisition
devices, deduplicates retransmitted chunks, and serves the stored signal
back to clinical dashboards and analysis tools.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=eeg.db go run .

Or with flags:

	go run . -p 8000 -t sqlite -d eeg.db
	go run . -p 8000 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string or SQLite path

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CORS_ORIGIN (-cors-origin): Dashboard origin (default: http://localhost:5173)
  - LOG_LEVEL (-log): debug, info, warn, error (default: info)

A .env file in the working directory is honored.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (ingest, query, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - validation: Chunk geometry and recording ID rules
  - checksum: Canonical serialization and chunk digests
  - db: Engine selection and schema creation
  - cliparse: Configuration parsing

Companion tooling lives alongside the server:

  - edf: EDF recording reader
  - simulator: Streams EDF files through the ingest endpoint
  - annotations: CHB-MIT seizure annotation analyzer
  - cmd/eegsim: CLI wrapping the simulator and analyzer

See package documentation for each component.
*/
package main
