// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/neurotap/eeg-pipeline/cliparse"
	"github.com/neurotap/eeg-pipeline/handlers"
	"github.com/neurotap/eeg-pipeline/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	ingestHandler := handlers.NewIngestHandler(db, cfg)
	queryHandler := handlers.NewQueryHandler(db, cfg)
	healthHandler := handlers.NewHealthHandler(db, cfg)

	// Health check (unwrapped: probes would drown the request log)
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Ingestion (devices POST one chunk per second per recording)
	mux.HandleFunc("POST /api/ingest/{$}", middleware.WithLogging(ingestHandler.SubmitChunk))

	// Query surface (dashboard and analysis tools)
	mux.HandleFunc("GET /api/eeg/{patient_id}/recordings", middleware.WithLogging(queryHandler.GetPatientRecordings))
	mux.HandleFunc("GET /api/eeg/{patient_id}/recordings/{recording_id}/summary", middleware.WithLogging(queryHandler.GetRecordingSummary))
	mux.HandleFunc("GET /api/eeg/{patient_id}/recordings/{recording_id}/data", middleware.WithLogging(queryHandler.GetRecordingData))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("eeg-pipeline API v1"))
	})

	return mux
}
