// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package edf reads European Data Format files, the container used by the
CHB-MIT scalp EEG corpus and most clinical EEG exports.

# File Layout

An EDF file is a 256-byte fixed header, then 256 bytes of header per
signal, then a sequence of data records. Header fields are fixed-width
space-padded ASCII; the per-signal fields are stored field-major (all
labels, then all transducer strings, and so on). Each data record holds
one record-duration's worth of samples for every signal in order, as
little-endian 16-bit two's-complement integers.

# Decoding

Read and ReadFile decode the whole stream into a Recording:

	rec, err := edf.ReadFile("chb01_03.edf")
	if err != nil {
		return err
	}
	// rec.Channels, rec.SampleRate, rec.Data[channel][sample]

Digital values are converted to physical units with the per-signal
linear map declared in the header:

	physical = physMin + (physMax-physMin) * (digital-digMin) / (digMax-digMin)

EDF+ annotation signals ("EDF Annotations") are skipped: their bytes are
consumed but they appear in neither Channels nor Data.

# Constraints

All data signals must share one sampling rate, the rate must be a whole
number of samples per second, and the record count must be known up
front. Streaming EDF+ files with an unknown record count are rejected.
*/
package edf
