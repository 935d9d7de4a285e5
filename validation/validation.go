// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package validation enforces structural rules on incoming EEG chunks
// before anything touches storage.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Upper bounds on chunk geometry. A 1-second chunk from a clinical
// montage tops out well below both of these.
const (
	MaxChannels          = 64
	MaxSamplesPerChannel = 4096
)

// ParseRecordingID extracts the patient identifier from a recording ID.
// Recording IDs follow the convention {patient}_{recording}, so
// "chb01_03.edf" belongs to patient "chb01".
func ParseRecordingID(recordingID string) (string, error) {
	if recordingID == "" {
		return "", errors.New("recording_id is required")
	}
	patientID, _, found := strings.Cut(recordingID, "_")
	if !found {
		return "", fmt.Errorf("recording_id %q must be of the form {patient}_{recording}", recordingID)
	}
	if patientID == "" {
		return "", fmt.Errorf("recording_id %q has an empty patient prefix", recordingID)
	}
	return patientID, nil
}

// ValidateChunk checks that a chunk is a non-empty rectangular matrix
// with one row per declared channel.
func ValidateChunk(channels []string, data [][]float64) error {
	if len(channels) == 0 {
		return errors.New("channels must not be empty")
	}
	if len(channels) > MaxChannels {
		return fmt.Errorf("too many channels: %d exceeds limit of %d", len(channels), MaxChannels)
	}
	if len(data) == 0 {
		return errors.New("data must not be empty")
	}
	if len(data) != len(channels) {
		return fmt.Errorf("data has %d rows but %d channels were declared", len(data), len(channels))
	}
	width := len(data[0])
	if width == 0 {
		return errors.New("data rows must contain at least one sample")
	}
	if width > MaxSamplesPerChannel {
		return fmt.Errorf("too many samples per channel: %d exceeds limit of %d", width, MaxSamplesPerChannel)
	}
	for i, row := range data {
		if len(row) != width {
			return fmt.Errorf("data row %d has %d samples, expected %d", i, len(row), width)
		}
	}
	return nil
}
