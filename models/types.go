package models

import "time"

// Ingest outcome constants
const (
	StatusSuccess   = "success"
	StatusDuplicate = "duplicate"
)

// Health status constants
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Error code constants
const (
	ErrCodeValidation       = "validation_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeStorage          = "storage_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)

// Request types

// Pointer fields distinguish "absent" from a legitimate zero value.
type IngestRequest struct {
	RecordingID string      `json:"recording_id"`
	ChunkIndex  *int        `json:"chunk_index"`
	Channels    []string    `json:"channels"`
	Data        [][]float64 `json:"data"`
	Timestamp   *float64    `json:"timestamp"`
}

// Response types

type IngestResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type PatientRecordingsResponse struct {
	PatientID    string   `json:"patient_id"`
	TotalSamples int64    `json:"total_samples"`
	Channels     []string `json:"channels"`
}

type RecordingSummaryResponse struct {
	PatientID    string   `json:"patient_id"`
	RecordingID  string   `json:"recording_id"`
	TotalSamples int64    `json:"total_samples"`
	Channels     []string `json:"channels"`
}

type RecordingDataResponse struct {
	PatientID   string        `json:"patient_id"`
	RecordingID string        `json:"recording_id"`
	StartSec    float64       `json:"start_sec"`
	EndSec      float64       `json:"end_sec"`
	Samples     []SamplePoint `json:"samples"`
}

type SamplePoint struct {
	Channel      string  `json:"channel"`
	TimestampSec float64 `json:"timestamp_sec"`
	ValueUV      float64 `json:"value_uv"`
}

// Domain types

type Sample struct {
	PatientID    string    `json:"patient_id"`
	RecordingID  string    `json:"recording_id"`
	Channel      string    `json:"channel"`
	TimestampSec float64   `json:"timestamp_sec"`
	ValueUV      float64   `json:"value_uv"`
	IngestedAt   time.Time `json:"ingested_at"`
}

type IngestionLogEntry struct {
	ID            int64     `json:"id"`
	PatientID     string    `json:"patient_id"`
	RecordingID   string    `json:"recording_id"`
	ChunkStartSec float64   `json:"chunk_start_sec"`
	ChunkEndSec   float64   `json:"chunk_end_sec"`
	NumSamples    int       `json:"num_samples"`
	Checksum      string    `json:"checksum"`
	IngestedAt    time.Time `json:"ingested_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
