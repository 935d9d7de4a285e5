// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the EEG pipeline API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Ingestion (acquisition devices):

	POST /api/ingest/ - Submit one chunk of EEG signal

The trailing slash is part of the route; the pattern uses the {$}
anchor so only the exact path matches.

Query surface (dashboard, analysis tools):

	GET /api/eeg/{patient_id}/recordings                        - Patient totals and channels
	GET /api/eeg/{patient_id}/recordings/{recording_id}/summary - One recording's totals
	GET /api/eeg/{patient_id}/recordings/{recording_id}/data    - Samples in [start_sec, end_sec)

# Handler Initialization

The router creates handler instances with dependency injection:

	ingestHandler := handlers.NewIngestHandler(db, cfg)
	queryHandler := handlers.NewQueryHandler(db, cfg)
	healthHandler := handlers.NewHealthHandler(db, cfg)

All handlers receive the database connection and configuration. Every
route except /health is wrapped in middleware.WithLogging.
*/
package router
