// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SessionRecording is one entry in a session playlist.
type SessionRecording struct {
	Path        string `yaml:"path"`
	RecordingID string `yaml:"recording_id"`
}

// Session is a YAML playlist of recordings to stream in order, so a
// whole patient directory can be replayed with one command.
type Session struct {
	APIURL     string             `yaml:"api_url"`
	DelayMS    int                `yaml:"delay_ms"`
	Limit      int                `yaml:"limit"`
	Recordings []SessionRecording `yaml:"recordings"`
}

// LoadSession reads and validates a session playlist. Relative
// recording paths are resolved against the playlist's directory.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}

	if s.APIURL == "" {
		s.APIURL = DefaultAPIURL
	}
	if len(s.Recordings) == 0 {
		return nil, fmt.Errorf("session lists no recordings")
	}

	baseDir := filepath.Dir(path)
	for i := range s.Recordings {
		rec := &s.Recordings[i]
		if rec.Path == "" {
			return nil, fmt.Errorf("recording %d: path is required", i)
		}
		if !filepath.IsAbs(rec.Path) {
			rec.Path = filepath.Join(baseDir, rec.Path)
		}
		if rec.RecordingID == "" {
			rec.RecordingID = filepath.Base(rec.Path)
		}
	}

	return &s, nil
}

// Run streams every recording in the session sequentially. It stops at
// the first failure and returns the results collected so far.
func (s *Session) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, 0, len(s.Recordings))

	for _, rec := range s.Recordings {
		opts := Options{
			APIURL:      s.APIURL,
			RecordingID: rec.RecordingID,
			Limit:       s.Limit,
			Delay:       time.Duration(s.DelayMS) * time.Millisecond,
		}

		result, err := StreamFile(ctx, rec.Path, opts)
		if result != nil {
			results = append(results, result)
		}
		if err != nil {
			return results, fmt.Errorf("recording %s: %w", rec.RecordingID, err)
		}
	}

	return results, nil
}
