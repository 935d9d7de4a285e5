// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the EEG pipeline API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - IngestHandler: Chunk submission and deduplication
  - QueryHandler: Patient, recording, and sample-window retrieval
  - HealthHandler: Liveness probe backed by a database ping

Handlers are created via constructor functions that accept *sql.DB and Config:

	ingestHandler := handlers.NewIngestHandler(db, cfg)

# Ingestion Flow

Producers stream one chunk per second of recording:

	POST /api/ingest/ → SubmitChunk

A chunk is a rectangular matrix: one row of samples per declared channel.
Row j of channel data expands to a sample at timestamp chunk_index + j/S
where S is the samples-per-channel count, so consecutive chunks tile the
time axis without gaps.

Chunk identity is (recording_id, chunk_index). A resubmitted chunk is
absorbed with status "duplicate" and HTTP 200; producers retry blindly
after a crash without risk of double-storing. The arbiter is a unique
constraint on the ingestion log, checked inside the same transaction
that writes the samples, so two racing writers cannot both win.

# Query Flow

Readers address data by patient, then recording, then time window:

	GET /api/eeg/{patient_id}/recordings                         → GetPatientRecordings
	GET /api/eeg/{patient_id}/recordings/{recording_id}/summary  → GetRecordingSummary
	GET /api/eeg/{patient_id}/recordings/{recording_id}/data     → GetRecordingData

Data windows are half-open: start_sec <= timestamp_sec < end_sec. An
empty window is a 200 with an empty samples array; an unknown patient
or recording is a 404.

# Sample Expansion

The pure chunk-to-rows transform is implemented in expand.go:

	samples := ExpandChunk(patientID, recordingID, chunkIndex, channels, data, now)

Handlers validate first and expand second, so a rejected chunk never
reaches the database.
*/
package handlers
