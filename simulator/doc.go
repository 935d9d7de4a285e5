// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package simulator replays EDF recordings against the ingest API,
standing in for a live acquisition device during development and load
testing.

# Streaming

A recording is sliced into one-second chunks (MakeChunks) and posted
sequentially with increasing chunk_index (Stream). StreamFile wires the
two together for a single EDF file:

	result, err := simulator.StreamFile(ctx, "chb01_03.edf", simulator.Options{
		APIURL: "http://localhost:8000/api/ingest/",
		Delay:  10 * time.Millisecond,
	})

Because the server deduplicates on (recording_id, chunk_index), a
simulator run can be interrupted and restarted from the top; replayed
chunks come back as duplicates and are counted in the Result rather
than treated as failures.

# Sessions

A Session is a YAML playlist for replaying several recordings in order:

	api_url: http://localhost:8000/api/ingest/
	delay_ms: 10
	recordings:
	  - path: chb01/chb01_03.edf
	  - path: chb01/chb01_04.edf
	    recording_id: chb01_04.edf

Relative paths resolve against the playlist file's directory.
*/
package simulator
