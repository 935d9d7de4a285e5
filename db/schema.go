// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database engine. Supported engine
// names are "postgres" and "sqlite".
func Open(engine, url string) (*sql.DB, error) {
	switch engine {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported database type %q (want postgres or sqlite)", engine)
	}

	conn, err := sql.Open(engine, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", engine, err)
	}

	if engine == "sqlite" {
		// One connection serializes writers (no SQLITE_BUSY) and keeps
		// an in-memory database from vanishing between pool connections.
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, engine string) error {
	ddl := schemaPostgres
	if engine == "sqlite" {
		ddl = schemaSQLite
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The two variants differ only in the autoincrement column syntax.
// Timestamps are always written from Go in UTC, never by the engine.

const schemaPostgres = `
-- EEG samples
CREATE TABLE IF NOT EXISTS eeg_samples (
    id BIGSERIAL PRIMARY KEY,
    patient_id TEXT NOT NULL,
    recording_id TEXT NOT NULL,
    channel TEXT NOT NULL,
    timestamp_sec DOUBLE PRECISION NOT NULL,
    value_uv DOUBLE PRECISION NOT NULL,
    ingested_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_eeg_samples_patient_time ON eeg_samples(patient_id, recording_id, timestamp_sec);
CREATE INDEX IF NOT EXISTS idx_eeg_samples_channel_time ON eeg_samples(patient_id, recording_id, channel, timestamp_sec);

-- Ingestion log
CREATE TABLE IF NOT EXISTS ingestion_log (
    id BIGSERIAL PRIMARY KEY,
    patient_id TEXT NOT NULL,
    recording_id TEXT NOT NULL,
    chunk_start_sec DOUBLE PRECISION NOT NULL,
    chunk_end_sec DOUBLE PRECISION NOT NULL,
    num_samples INTEGER NOT NULL,
    checksum TEXT NOT NULL,
    ingested_at TIMESTAMP NOT NULL,
    UNIQUE (recording_id, chunk_start_sec)
);

CREATE INDEX IF NOT EXISTS idx_ingestion_log_patient ON ingestion_log(patient_id);
`

const schemaSQLite = `
-- EEG samples
CREATE TABLE IF NOT EXISTS eeg_samples (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id TEXT NOT NULL,
    recording_id TEXT NOT NULL,
    channel TEXT NOT NULL,
    timestamp_sec DOUBLE PRECISION NOT NULL,
    value_uv DOUBLE PRECISION NOT NULL,
    ingested_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_eeg_samples_patient_time ON eeg_samples(patient_id, recording_id, timestamp_sec);
CREATE INDEX IF NOT EXISTS idx_eeg_samples_channel_time ON eeg_samples(patient_id, recording_id, channel, timestamp_sec);

-- Ingestion log
CREATE TABLE IF NOT EXISTS ingestion_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id TEXT NOT NULL,
    recording_id TEXT NOT NULL,
    chunk_start_sec DOUBLE PRECISION NOT NULL,
    chunk_end_sec DOUBLE PRECISION NOT NULL,
    num_samples INTEGER NOT NULL,
    checksum TEXT NOT NULL,
    ingested_at TIMESTAMP NOT NULL,
    UNIQUE (recording_id, chunk_start_sec)
);

CREATE INDEX IF NOT EXISTS idx_ingestion_log_patient ON ingestion_log(patient_id);
`
