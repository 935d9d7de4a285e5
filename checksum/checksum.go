// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Canonical serializes v to compact JSON with stable byte output.
// HTML escaping is disabled so the same value always produces the same
// bytes regardless of which layer built it.
func Canonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to canonicalize value: %w", err)
	}
	// Encode appends a trailing newline; strip it so the digest covers
	// only the value itself.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ChunkData returns the SHA-256 digest of a chunk's sample matrix as a
// lowercase hex string. The digest is an audit trail for accepted
// chunks, not a dedup key.
func ChunkData(data [][]float64) (string, error) {
	b, err := Canonical(data)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
