// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/neurotap/eeg-pipeline/cliparse"
	"github.com/neurotap/eeg-pipeline/db"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// Each call returns an isolated database; callers own the Close.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		CORSOrigin:   "http://localhost:5173",
		LogLevel:     "info",
	}
}

// IngestTestChunk writes one chunk's samples and log entry directly,
// bypassing the HTTP handler. Useful for seeding query tests.
func IngestTestChunk(t *testing.T, conn *sql.DB, patientID, recordingID string, chunkIndex int, channels []string, data [][]float64) {
	t.Helper()

	if len(data) == 0 || len(data[0]) == 0 {
		t.Fatal("IngestTestChunk requires a non-empty matrix")
	}

	perChannel := len(data[0])
	now := time.Now().UTC()

	_, err := conn.Exec(`
		INSERT INTO ingestion_log (patient_id, recording_id, chunk_start_sec, chunk_end_sec, num_samples, checksum, ingested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, patientID, recordingID, float64(chunkIndex), float64(chunkIndex+1), len(channels)*perChannel, "seed", now)
	if err != nil {
		t.Fatalf("Failed to seed ingestion log: %v", err)
	}

	for i, channel := range channels {
		for j, value := range data[i] {
			ts := float64(chunkIndex) + float64(j)/float64(perChannel)
			_, err := conn.Exec(`
				INSERT INTO eeg_samples (patient_id, recording_id, channel, timestamp_sec, value_uv, ingested_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, patientID, recordingID, channel, ts, value, now)
			if err != nil {
				t.Fatalf("Failed to seed sample: %v", err)
			}
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
