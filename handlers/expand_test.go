// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func TestExpandChunk(t *testing.T) {
	now := time.Now().UTC()
	channels := []string{"FP1-F7", "F7-T7"}
	data := [][]float64{{1, 2, 3}, {4, 5, 6}}

	samples := ExpandChunk("chb01", "chb01_03.edf", 0, channels, data, now)

	if len(samples) != 6 {
		t.Fatalf("Expected 6 samples (2 channels x 3), got %d", len(samples))
	}

	// First channel occupies the first three rows in order
	wantTimestamps := []float64{0, 1.0 / 3.0, 2.0 / 3.0}
	for j := 0; j < 3; j++ {
		s := samples[j]
		if s.Channel != "FP1-F7" {
			t.Errorf("Sample %d: expected channel FP1-F7, got %s", j, s.Channel)
		}
		if math.Abs(s.TimestampSec-wantTimestamps[j]) > 1e-9 {
			t.Errorf("Sample %d: expected timestamp %v, got %v", j, wantTimestamps[j], s.TimestampSec)
		}
		if s.ValueUV != data[0][j] {
			t.Errorf("Sample %d: expected value %v, got %v", j, data[0][j], s.ValueUV)
		}
	}

	// Second channel repeats the same offsets
	for j := 0; j < 3; j++ {
		s := samples[3+j]
		if s.Channel != "F7-T7" {
			t.Errorf("Sample %d: expected channel F7-T7, got %s", 3+j, s.Channel)
		}
		if math.Abs(s.TimestampSec-wantTimestamps[j]) > 1e-9 {
			t.Errorf("Sample %d: expected timestamp %v, got %v", 3+j, wantTimestamps[j], s.TimestampSec)
		}
		if s.ValueUV != data[1][j] {
			t.Errorf("Sample %d: expected value %v, got %v", 3+j, data[1][j], s.ValueUV)
		}
	}

	// Identity columns are constant across the chunk
	for i, s := range samples {
		if s.PatientID != "chb01" {
			t.Errorf("Sample %d: expected patient chb01, got %s", i, s.PatientID)
		}
		if s.RecordingID != "chb01_03.edf" {
			t.Errorf("Sample %d: expected recording chb01_03.edf, got %s", i, s.RecordingID)
		}
		if !s.IngestedAt.Equal(now) {
			t.Errorf("Sample %d: expected ingested_at %v, got %v", i, now, s.IngestedAt)
		}
	}
}

func TestExpandChunkOffsetsByIndex(t *testing.T) {
	// Chunk k covers [k, k+1)
	now := time.Now().UTC()

	samples := ExpandChunk("chb01", "chb01_03.edf", 7, []string{"FP1-F7"}, [][]float64{{10, 20}}, now)

	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(samples))
	}
	if samples[0].TimestampSec != 7.0 {
		t.Errorf("Expected first timestamp 7.0, got %v", samples[0].TimestampSec)
	}
	if math.Abs(samples[1].TimestampSec-7.5) > 1e-9 {
		t.Errorf("Expected second timestamp 7.5, got %v", samples[1].TimestampSec)
	}
}

func TestExpandChunkCount(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		channels   int
		perChannel int
	}{
		{1, 1},
		{2, 3},
		{4, 256},
		{23, 256},
	}

	for _, tc := range cases {
		channels := make([]string, tc.channels)
		data := make([][]float64, tc.channels)
		for i := range channels {
			channels[i] = fmt.Sprintf("CH%d", i)
			data[i] = make([]float64, tc.perChannel)
		}

		samples := ExpandChunk("p01", "p01_r1", 0, channels, data, now)
		if len(samples) != tc.channels*tc.perChannel {
			t.Errorf("%d channels x %d samples: expected %d rows, got %d",
				tc.channels, tc.perChannel, tc.channels*tc.perChannel, len(samples))
		}
	}
}

func TestExpandChunkEmpty(t *testing.T) {
	if got := ExpandChunk("p01", "p01_r1", 0, nil, nil, time.Now().UTC()); got != nil {
		t.Errorf("Expected nil for empty data, got %d samples", len(got))
	}
}
