// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package checksum computes audit digests for ingested EEG chunks.

# Canonical Serialization

Digests are only as stable as the bytes they cover, so values are first
reduced to a canonical JSON form:

	b, err := checksum.Canonical(data)

Canonical output is compact JSON with HTML escaping disabled and no
trailing newline. The same matrix always yields the same bytes no matter
which code path produced it.

# Chunk Digests

The digest stored with each accepted chunk:

	sum, err := checksum.ChunkData(data)

Returns the SHA-256 of the canonical form as 64 lowercase hex characters.
The digest is recorded for audit: a retransmitted chunk that claims an
already-ingested position but hashes differently is logged, never
re-ingested. Deduplication itself keys on (recording_id, chunk_start_sec),
not on the digest.
*/
package checksum
