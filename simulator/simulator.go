// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/neurotap/eeg-pipeline/edf"
)

// DefaultAPIURL is the ingest endpoint of a locally running pipeline.
const DefaultAPIURL = "http://localhost:8000/api/ingest/"

// Options configure a streaming run for one recording.
type Options struct {
	APIURL      string
	RecordingID string
	Limit       int           // max chunks to send, 0 means all
	Delay       time.Duration // pause between chunks
	Client      *http.Client
}

// Result summarizes a streaming run.
type Result struct {
	RecordingID string
	ChunksSent  int
	Duplicates  int
	SamplesSent int64
	Elapsed     time.Duration
}

// Summary renders the result as a one-line report.
func (r *Result) Summary() string {
	return fmt.Sprintf("%s: %s chunks (%s samples, %d duplicates) in %s",
		r.RecordingID,
		humanize.Comma(int64(r.ChunksSent)),
		humanize.Comma(r.SamplesSent),
		r.Duplicates,
		r.Elapsed.Round(time.Millisecond))
}

// chunkPayload is the ingest wire format.
type chunkPayload struct {
	RecordingID string      `json:"recording_id"`
	ChunkIndex  int         `json:"chunk_index"`
	Channels    []string    `json:"channels"`
	Data        [][]float64 `json:"data"`
	Timestamp   float64     `json:"timestamp"`
}

type ingestReply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MakeChunks slices a recording into one-second windows of sampleRate
// samples per channel. A trailing window shorter than one second is
// dropped, mirroring how a live device only emits complete seconds.
func MakeChunks(data [][]float64, sampleRate int) [][][]float64 {
	if len(data) == 0 || sampleRate <= 0 {
		return nil
	}

	numSamples := len(data[0])
	chunks := [][][]float64{}
	for start := 0; start+sampleRate <= numSamples; start += sampleRate {
		chunk := make([][]float64, len(data))
		for c := range data {
			chunk[c] = data[c][start : start+sampleRate]
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Stream posts chunks sequentially with increasing chunk_index,
// simulating a device emitting one chunk per second. It stops on the
// first transport or non-200 failure; duplicates reported by the server
// are counted, not errors.
func Stream(ctx context.Context, channels []string, chunks [][][]float64, opts Options) (*Result, error) {
	if opts.RecordingID == "" {
		return nil, fmt.Errorf("recording ID is required")
	}
	if opts.APIURL == "" {
		opts.APIURL = DefaultAPIURL
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.Limit > 0 && opts.Limit < len(chunks) {
		chunks = chunks[:opts.Limit]
	}

	result := &Result{RecordingID: opts.RecordingID}
	start := time.Now()
	total := len(chunks)

	for i, chunk := range chunks {
		payload := chunkPayload{
			RecordingID: opts.RecordingID,
			ChunkIndex:  i,
			Channels:    channels,
			Data:        chunk,
			Timestamp:   float64(time.Now().UnixNano()) / 1e9,
		}

		reply, err := postChunk(ctx, opts.Client, opts.APIURL, payload)
		if err != nil {
			result.Elapsed = time.Since(start)
			return result, fmt.Errorf("chunk %d: %w", i, err)
		}

		result.ChunksSent++
		if len(chunk) > 0 {
			result.SamplesSent += int64(len(chunk) * len(chunk[0]))
		}
		if reply.Status == "duplicate" {
			result.Duplicates++
		}

		if (i+1)%10 == 0 || i == 0 {
			slog.Info("chunks sent",
				"recording_id", opts.RecordingID,
				"sent", i+1,
				"total", total)
		}

		if opts.Delay > 0 && i < total-1 {
			select {
			case <-time.After(opts.Delay):
			case <-ctx.Done():
				result.Elapsed = time.Since(start)
				return result, ctx.Err()
			}
		}
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

func postChunk(ctx context.Context, client *http.Client, apiURL string, payload chunkPayload) (*ingestReply, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal chunk: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build ingest request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post chunk: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("ingest returned %s: %s", resp.Status, bytes.TrimSpace(msg))
	}

	var reply ingestReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decode ingest response: %w", err)
	}
	return &reply, nil
}

// StreamFile loads an EDF recording and streams it chunk by chunk. The
// recording ID defaults to the file's base name, which also determines
// the patient the server files it under.
func StreamFile(ctx context.Context, path string, opts Options) (*Result, error) {
	rec, err := edf.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if opts.RecordingID == "" {
		opts.RecordingID = filepath.Base(path)
	}

	chunks := MakeChunks(rec.Data, rec.SampleRate)
	slog.Info("recording loaded",
		"path", path,
		"channels", len(rec.Channels),
		"sample_rate", rec.SampleRate,
		"duration_sec", rec.DurationSec(),
		"chunks", len(chunks))

	return Stream(ctx, rec.Channels, chunks, opts)
}
