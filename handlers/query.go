// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/neurotap/eeg-pipeline/cliparse"
	"github.com/neurotap/eeg-pipeline/middleware"
	"github.com/neurotap/eeg-pipeline/models"
)

type QueryHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQueryHandler(db *sql.DB, cfg cliparse.Config) *QueryHandler {
	return &QueryHandler{db: db, cfg: cfg}
}

// GetPatientRecordings handles GET /api/eeg/:patient_id/recordings
// Returns aggregate stats across everything stored for the patient
func (h *QueryHandler) GetPatientRecordings(w http.ResponseWriter, r *http.Request) {
	patientID := r.PathValue("patient_id")
	if patientID == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "patient_id is required")
		return
	}

	var total int64
	err := h.db.QueryRow(`
		SELECT COUNT(*) FROM eeg_samples WHERE patient_id = $1
	`, patientID).Scan(&total)

	if err != nil {
		slog.Error("failed to count samples", "error", err, "patient_id", patientID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Zero rows means the patient is unknown, not an empty listing
	if total == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Patient not found")
		return
	}

	channels, err := h.distinctChannels(patientID, "")
	if err != nil {
		slog.Error("failed to query channels", "error", err, "patient_id", patientID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PatientRecordingsResponse{
		PatientID:    patientID,
		TotalSamples: total,
		Channels:     channels,
	})
}

// GetRecordingSummary handles GET /api/eeg/:patient_id/recordings/:recording_id/summary
func (h *QueryHandler) GetRecordingSummary(w http.ResponseWriter, r *http.Request) {
	patientID := r.PathValue("patient_id")
	recordingID := r.PathValue("recording_id")
	if patientID == "" || recordingID == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "patient_id and recording_id are required")
		return
	}

	var total int64
	err := h.db.QueryRow(`
		SELECT COUNT(*) FROM eeg_samples WHERE patient_id = $1 AND recording_id = $2
	`, patientID, recordingID).Scan(&total)

	if err != nil {
		slog.Error("failed to count samples", "error", err, "recording_id", recordingID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if total == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Recording not found")
		return
	}

	channels, err := h.distinctChannels(patientID, recordingID)
	if err != nil {
		slog.Error("failed to query channels", "error", err, "recording_id", recordingID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RecordingSummaryResponse{
		PatientID:    patientID,
		RecordingID:  recordingID,
		TotalSamples: total,
		Channels:     channels,
	})
}

// GetRecordingData handles GET /api/eeg/:patient_id/recordings/:recording_id/data
// Returns samples in the half-open window [start_sec, end_sec)
func (h *QueryHandler) GetRecordingData(w http.ResponseWriter, r *http.Request) {
	patientID := r.PathValue("patient_id")
	recordingID := r.PathValue("recording_id")
	if patientID == "" || recordingID == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "patient_id and recording_id are required")
		return
	}

	startStr := r.URL.Query().Get("start_sec")
	endStr := r.URL.Query().Get("end_sec")
	if startStr == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "start_sec is required")
		return
	}
	if endStr == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "end_sec is required")
		return
	}

	startSec, err := strconv.ParseFloat(startStr, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "start_sec must be a number")
		return
	}
	endSec, err := strconv.ParseFloat(endStr, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "end_sec must be a number")
		return
	}

	// Secondary id ordering keeps channels in ingest order when they
	// share a timestamp
	rows, err := h.db.Query(`
		SELECT channel, timestamp_sec, value_uv
		FROM eeg_samples
		WHERE patient_id = $1 AND recording_id = $2
		  AND timestamp_sec >= $3 AND timestamp_sec < $4
		ORDER BY timestamp_sec, id
	`, patientID, recordingID, startSec, endSec)

	if err != nil {
		slog.Error("failed to query samples", "error", err, "recording_id", recordingID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	// An empty window is a valid answer, never a 404
	samples := []models.SamplePoint{}
	for rows.Next() {
		var sp models.SamplePoint
		if err := rows.Scan(&sp.Channel, &sp.TimestampSec, &sp.ValueUV); err != nil {
			slog.Error("failed to scan sample", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		samples = append(samples, sp)
	}

	middleware.JSONResponse(w, http.StatusOK, models.RecordingDataResponse{
		PatientID:   patientID,
		RecordingID: recordingID,
		StartSec:    startSec,
		EndSec:      endSec,
		Samples:     samples,
	})
}

// distinctChannels lists channel names seen for a patient, optionally
// narrowed to one recording. Sorted so responses are stable.
func (h *QueryHandler) distinctChannels(patientID, recordingID string) ([]string, error) {
	query := `SELECT DISTINCT channel FROM eeg_samples WHERE patient_id = $1 ORDER BY channel`
	args := []any{patientID}
	if recordingID != "" {
		query = `SELECT DISTINCT channel FROM eeg_samples WHERE patient_id = $1 AND recording_id = $2 ORDER BY channel`
		args = append(args, recordingID)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	channels := []string{}
	for rows.Next() {
		var ch string
		if err := rows.Scan(&ch); err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}

	return channels, nil
}
