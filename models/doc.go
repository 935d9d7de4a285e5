// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - IngestRequest: recording_id, chunk_index, channels, data, timestamp

ChunkIndex and Timestamp are pointers so a missing field can be told apart
from an explicit zero during validation.

# Response Types

Types for JSON responses:

  - IngestResponse: status, message
  - HealthResponse: status, message
  - PatientRecordingsResponse: patient_id, total_samples, channels
  - RecordingSummaryResponse: patient_id, recording_id, total_samples, channels
  - RecordingDataResponse: patient_id, recording_id, start_sec, end_sec, samples
  - SamplePoint: channel, timestamp_sec, value_uv
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Sample: one channel reading at one instant of a recording
  - IngestionLogEntry: audit record for one accepted chunk

# Constants

Ingest outcomes:

	StatusSuccess   = "success"
	StatusDuplicate = "duplicate"

Health states:

	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

Error codes:

	ErrCodeValidation       = "validation_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeStorage          = "storage_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
*/
package models
