// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"time"

	"github.com/neurotap/eeg-pipeline/models"
)

// ExpandChunk flattens a chunk's sample matrix into one Sample per
// channel per instant. A chunk covers one second of signal, so sample j
// of chunk k lands at timestamp k + j/S where S is the per-channel
// sample count.
//
// The matrix must already be validated: one row per channel, all rows
// the same width.
func ExpandChunk(patientID, recordingID string, chunkIndex int, channels []string, data [][]float64, ingestedAt time.Time) []models.Sample {
	if len(data) == 0 {
		return nil
	}

	perChannel := len(data[0])
	samples := make([]models.Sample, 0, len(channels)*perChannel)

	for i, channel := range channels {
		row := data[i]
		for j, value := range row {
			samples = append(samples, models.Sample{
				PatientID:    patientID,
				RecordingID:  recordingID,
				Channel:      channel,
				TimestampSec: float64(chunkIndex) + float64(j)/float64(perChannel),
				ValueUV:      value,
				IngestedAt:   ingestedAt,
			})
		}
	}

	return samples
}
