// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/neurotap/eeg-pipeline/checksum"
	"github.com/neurotap/eeg-pipeline/cliparse"
	"github.com/neurotap/eeg-pipeline/middleware"
	"github.com/neurotap/eeg-pipeline/models"
	"github.com/neurotap/eeg-pipeline/validation"
)

// maxIngestBodyBytes caps a chunk payload. 64 channels at 4096 samples
// of JSON floats stays well inside 8 MiB.
const maxIngestBodyBytes = 8 << 20

type IngestHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewIngestHandler(db *sql.DB, cfg cliparse.Config) *IngestHandler {
	return &IngestHandler{db: db, cfg: cfg}
}

// SubmitChunk handles POST /api/ingest/
func (h *IngestHandler) SubmitChunk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxIngestBodyBytes)

	var req models.IngestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "request body exceeds limit")
			return
		}
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Invalid JSON")
		return
	}

	// Validate input
	if req.RecordingID == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "recording_id is required")
		return
	}
	if req.ChunkIndex == nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "chunk_index is required")
		return
	}
	if *req.ChunkIndex < 0 {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "chunk_index must be non-negative")
		return
	}
	if req.Timestamp == nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "timestamp is required")
		return
	}

	patientID, err := validation.ParseRecordingID(req.RecordingID)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := validation.ValidateChunk(req.Channels, req.Data); err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sum, err := checksum.ChunkData(req.Data)
	if err != nil {
		slog.Error("failed to checksum chunk", "error", err, "recording_id", req.RecordingID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to ingest chunk")
		return
	}

	chunkIndex := *req.ChunkIndex
	chunkStartSec := float64(chunkIndex)
	chunkEndSec := float64(chunkIndex + 1)
	numSamples := len(req.Channels) * len(req.Data[0])
	now := time.Now().UTC()

	// Samples and log entry commit or vanish together
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// The UNIQUE constraint on (recording_id, chunk_start_sec) is the
	// race arbiter: of two concurrent writers, exactly one inserts.
	res, err := tx.Exec(`
		INSERT INTO ingestion_log (patient_id, recording_id, chunk_start_sec, chunk_end_sec, num_samples, checksum, ingested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (recording_id, chunk_start_sec) DO NOTHING
	`, patientID, req.RecordingID, chunkStartSec, chunkEndSec, numSamples, sum, now)

	if err != nil {
		slog.Error("failed to insert ingestion log", "error", err, "recording_id", req.RecordingID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to ingest chunk")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to ingest chunk")
		return
	}

	if affected == 0 {
		// Already ingested. Compare checksums so a device retransmitting
		// different bytes for the same position is at least visible.
		var storedSum string
		err := tx.QueryRow(`
			SELECT checksum FROM ingestion_log
			WHERE recording_id = $1 AND chunk_start_sec = $2
		`, req.RecordingID, chunkStartSec).Scan(&storedSum)
		if err == nil && storedSum != sum {
			slog.Warn("duplicate chunk with different payload",
				"recording_id", req.RecordingID,
				"chunk_index", chunkIndex,
				"stored_checksum", storedSum,
				"received_checksum", sum,
			)
		}

		slog.Info("duplicate chunk ignored", "recording_id", req.RecordingID, "chunk_index", chunkIndex)

		middleware.JSONResponse(w, http.StatusOK, models.IngestResponse{
			Status:  models.StatusDuplicate,
			Message: "Chunk already ingested",
		})
		return
	}

	samples := ExpandChunk(patientID, req.RecordingID, chunkIndex, req.Channels, req.Data, now)

	stmt, err := tx.Prepare(`
		INSERT INTO eeg_samples (patient_id, recording_id, channel, timestamp_sec, value_uv, ingested_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		slog.Error("failed to prepare sample insert", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to ingest chunk")
		return
	}
	defer stmt.Close()

	for _, s := range samples {
		if _, err := stmt.Exec(s.PatientID, s.RecordingID, s.Channel, s.TimestampSec, s.ValueUV, s.IngestedAt); err != nil {
			slog.Error("failed to insert sample", "error", err, "recording_id", req.RecordingID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to ingest chunk")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err, "recording_id", req.RecordingID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to ingest chunk")
		return
	}

	slog.Info("chunk ingested",
		"recording_id", req.RecordingID,
		"patient_id", patientID,
		"chunk_index", chunkIndex,
		"num_samples", numSamples,
	)

	middleware.JSONResponse(w, http.StatusOK, models.IngestResponse{
		Status:  models.StatusSuccess,
		Message: "Chunk ingested successfully",
	})
}
