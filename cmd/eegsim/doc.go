// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Eegsim is the companion CLI for the EEG pipeline server.

# Streaming

The stream command replays EDF recordings through a running server's
ingest endpoint, one-second chunks in order:

	eegsim stream chb01_03.edf
	eegsim stream --url http://localhost:8000/api/ingest/ --delay 0s chb01_03.edf
	eegsim stream --session patient01.yaml

A session playlist is a YAML file listing recordings to replay in
sequence, with optional api_url, delay_ms, and limit settings.

# Annotations

The annotations command summarizes CHB-MIT seizure annotation files
without touching the server:

	eegsim annotations chb01-summary.txt

# Global Flags

	-v, --verbose   enable debug logging
*/
package main
