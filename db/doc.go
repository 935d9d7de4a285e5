// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Engines

Two engines are supported through the same interface:

  - postgres (github.com/lib/pq) for deployments
  - sqlite (modernc.org/sqlite) for local development and tests

Open maps the configured engine name to its driver:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite connections are capped at one open connection. That serializes
writers, which sidesteps SQLITE_BUSY under concurrent ingest, and keeps
:memory: databases alive for the life of the pool.

# Schema Creation

CreateSchema initializes all required tables for the chosen engine:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The SQL is portable across both engines except for the
autoincrement primary key syntax, so there is one DDL constant per
engine.

# Tables

The schema includes:

  - eeg_samples: one row per channel per instant, the query surface
  - ingestion_log: one row per accepted chunk, the dedup and audit surface

# Deduplication

ingestion_log carries UNIQUE (recording_id, chunk_start_sec). Ingest
inserts the log row with ON CONFLICT DO NOTHING inside the same
transaction that writes the samples, so a retransmitted or racing chunk
collapses onto the first writer and never duplicates sample rows.

# Indexes

Performance indexes on:

  - eeg_samples.(patient_id, recording_id, timestamp_sec)
  - eeg_samples.(patient_id, recording_id, channel, timestamp_sec)
  - ingestion_log.(recording_id, chunk_start_sec) (unique)
  - ingestion_log.patient_id
*/
package db
