// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package edf

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	headerSize       = 256
	perSignalHeader  = 256
	annotationsLabel = "EDF Annotations"
)

// Signal describes one channel as declared in the file header.
type Signal struct {
	Label            string
	Transducer       string
	PhysicalDim      string
	PhysicalMin      float64
	PhysicalMax      float64
	DigitalMin       int
	DigitalMax       int
	Prefilter        string
	SamplesPerRecord int
}

// annotation reports whether the signal carries EDF+ text annotations
// rather than sampled data.
func (s Signal) annotation() bool {
	return s.Label == annotationsLabel
}

// Header holds the fixed part of an EDF file header.
type Header struct {
	Version        string
	PatientID      string
	RecordingID    string
	StartDate      string
	StartTime      string
	NumDataRecords int
	RecordDuration float64
	Signals        []Signal
}

// Recording is a fully decoded EDF file with samples converted to
// physical units. Data is indexed [channel][sample] and excludes
// annotation signals.
type Recording struct {
	Header     Header
	Channels   []string
	SampleRate int
	Data       [][]float64
}

// DurationSec returns the recording length in seconds.
func (r *Recording) DurationSec() float64 {
	return float64(r.Header.NumDataRecords) * r.Header.RecordDuration
}

// ReadFile decodes the EDF file at path.
func ReadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open EDF file: %w", err)
	}
	defer f.Close()

	rec, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rec, nil
}

// Read decodes an EDF stream: a 256-byte fixed header, 256 bytes of
// header per signal, then data records of little-endian int16 samples.
func Read(r io.Reader) (*Recording, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	channels := []string{}
	dataIdx := []int{} // positions of non-annotation signals
	for i, sig := range hdr.Signals {
		if sig.annotation() {
			continue
		}
		channels = append(channels, sig.Label)
		dataIdx = append(dataIdx, i)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("file declares no data signals")
	}

	// All data signals must share one rate or there is no single
	// samples-per-second to chunk by
	perRecord := hdr.Signals[dataIdx[0]].SamplesPerRecord
	for _, i := range dataIdx {
		if hdr.Signals[i].SamplesPerRecord != perRecord {
			return nil, fmt.Errorf("mixed sampling rates: signal %q has %d samples per record, %q has %d",
				hdr.Signals[dataIdx[0]].Label, perRecord,
				hdr.Signals[i].Label, hdr.Signals[i].SamplesPerRecord)
		}
	}

	rate := float64(perRecord) / hdr.RecordDuration
	sampleRate := int(rate)
	if float64(sampleRate) != rate {
		return nil, fmt.Errorf("non-integer sample rate %v (record of %d samples over %v seconds)",
			rate, perRecord, hdr.RecordDuration)
	}

	// Precompute the digital-to-physical transform per signal
	gain := make([]float64, len(hdr.Signals))
	offset := make([]float64, len(hdr.Signals))
	for i, sig := range hdr.Signals {
		if sig.annotation() {
			continue
		}
		digRange := sig.DigitalMax - sig.DigitalMin
		if digRange == 0 {
			return nil, fmt.Errorf("signal %q has an empty digital range", sig.Label)
		}
		gain[i] = (sig.PhysicalMax - sig.PhysicalMin) / float64(digRange)
		offset[i] = sig.PhysicalMin - gain[i]*float64(sig.DigitalMin)
	}

	data := make([][]float64, len(channels))
	for i := range data {
		data[i] = make([]float64, 0, hdr.NumDataRecords*perRecord)
	}

	scratch := make([]byte, maxSamplesPerRecord(hdr.Signals)*2)
	for rec := 0; rec < hdr.NumDataRecords; rec++ {
		ch := 0
		for i, sig := range hdr.Signals {
			raw := scratch[:sig.SamplesPerRecord*2]
			if _, err := io.ReadFull(r, raw); err != nil {
				return nil, fmt.Errorf("truncated data record %d: %w", rec, err)
			}
			if sig.annotation() {
				continue
			}
			for j := 0; j < sig.SamplesPerRecord; j++ {
				digital := int16(binary.LittleEndian.Uint16(raw[j*2:]))
				data[ch] = append(data[ch], gain[i]*float64(digital)+offset[i])
			}
			ch++
		}
	}

	return &Recording{
		Header:     *hdr,
		Channels:   channels,
		SampleRate: sampleRate,
		Data:       data,
	}, nil
}

func maxSamplesPerRecord(signals []Signal) int {
	max := 0
	for _, sig := range signals {
		if sig.SamplesPerRecord > max {
			max = sig.SamplesPerRecord
		}
	}
	return max
}

// fieldReader walks fixed-width space-padded ASCII fields.
type fieldReader struct {
	buf []byte
	off int
}

func (f *fieldReader) next(n int) string {
	s := strings.TrimSpace(string(f.buf[f.off : f.off+n]))
	f.off += n
	return s
}

func (f *fieldReader) nextInt(n int, name string) (int, error) {
	s := f.next(n)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q in header", name, s)
	}
	return v, nil
}

func (f *fieldReader) nextFloat(n int, name string) (float64, error) {
	s := f.next(n)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q in header", name, s)
	}
	return v, nil
}

func readHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("truncated header: %w", err)
	}

	f := &fieldReader{buf: buf}
	hdr := &Header{
		Version:     f.next(8),
		PatientID:   f.next(80),
		RecordingID: f.next(80),
		StartDate:   f.next(8),
		StartTime:   f.next(8),
	}

	headerBytes, err := f.nextInt(8, "header size")
	if err != nil {
		return nil, err
	}
	f.next(44) // reserved

	hdr.NumDataRecords, err = f.nextInt(8, "number of data records")
	if err != nil {
		return nil, err
	}
	if hdr.NumDataRecords < 0 {
		return nil, fmt.Errorf("number of data records is unknown (-1); streaming files are not supported")
	}

	hdr.RecordDuration, err = f.nextFloat(8, "record duration")
	if err != nil {
		return nil, err
	}
	if hdr.RecordDuration <= 0 {
		return nil, fmt.Errorf("record duration must be positive, got %v", hdr.RecordDuration)
	}

	numSignals, err := f.nextInt(4, "signal count")
	if err != nil {
		return nil, err
	}
	if numSignals <= 0 {
		return nil, fmt.Errorf("signal count must be positive, got %d", numSignals)
	}
	if want := headerSize + numSignals*perSignalHeader; headerBytes != want {
		return nil, fmt.Errorf("header size field says %d bytes, expected %d for %d signals",
			headerBytes, want, numSignals)
	}

	// Signal headers are field-major: all labels, then all transducers,
	// and so on
	sbuf := make([]byte, numSignals*perSignalHeader)
	if _, err := io.ReadFull(r, sbuf); err != nil {
		return nil, fmt.Errorf("truncated signal headers: %w", err)
	}
	sf := &fieldReader{buf: sbuf}

	signals := make([]Signal, numSignals)
	for i := range signals {
		signals[i].Label = sf.next(16)
	}
	for i := range signals {
		signals[i].Transducer = sf.next(80)
	}
	for i := range signals {
		signals[i].PhysicalDim = sf.next(8)
	}
	for i := range signals {
		if signals[i].PhysicalMin, err = sf.nextFloat(8, "physical minimum"); err != nil {
			return nil, err
		}
	}
	for i := range signals {
		if signals[i].PhysicalMax, err = sf.nextFloat(8, "physical maximum"); err != nil {
			return nil, err
		}
	}
	for i := range signals {
		if signals[i].DigitalMin, err = sf.nextInt(8, "digital minimum"); err != nil {
			return nil, err
		}
	}
	for i := range signals {
		if signals[i].DigitalMax, err = sf.nextInt(8, "digital maximum"); err != nil {
			return nil, err
		}
	}
	for i := range signals {
		signals[i].Prefilter = sf.next(80)
	}
	for i := range signals {
		if signals[i].SamplesPerRecord, err = sf.nextInt(8, "samples per record"); err != nil {
			return nil, err
		}
		if signals[i].SamplesPerRecord <= 0 {
			return nil, fmt.Errorf("signal %q declares %d samples per record",
				signals[i].Label, signals[i].SamplesPerRecord)
		}
	}
	// trailing ns*32 reserved bytes ignored

	hdr.Signals = signals
	return hdr, nil
}
