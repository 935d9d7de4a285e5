// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/neurotap/eeg-pipeline/cliparse"
	"github.com/neurotap/eeg-pipeline/middleware"
	"github.com/neurotap/eeg-pipeline/models"
)

type HealthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewHealthHandler(db *sql.DB, cfg cliparse.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

// Check handles GET /health
// Reports unhealthy when the database stops answering, so acquisition
// devices can pause instead of streaming into a dead store.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		middleware.JSONResponse(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status:  models.StatusUnhealthy,
			Message: "database unreachable",
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:  models.StatusHealthy,
		Message: "API is up and running",
	})
}
