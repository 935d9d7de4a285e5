// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package annotations

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Seizure is one annotated event, in seconds from the start of its file.
type Seizure struct {
	Number   int
	StartSec int
	EndSec   int
}

// DurationSec returns the seizure length in seconds.
func (s Seizure) DurationSec() int {
	return s.EndSec - s.StartSec
}

// FileAnnotation holds the annotation block for one EDF file.
type FileAnnotation struct {
	FileName    string
	StartTime   string // wall clock as written, e.g. "13:43:04"
	EndTime     string
	DurationSec int // derived from the clock times; 0 when they are absent
	Seizures    []Seizure
}

// Summary is one parsed patient summary file.
type Summary struct {
	PatientID      string
	SamplingRateHz int
	Channels       []string
	Files          []FileAnnotation
}

var (
	samplingRateRe = regexp.MustCompile(`^Data Sampling Rate:\s*(\d+)\s*Hz`)
	channelRe      = regexp.MustCompile(`^Channel\s+\d+:\s*(\S+)`)
	fileNameRe     = regexp.MustCompile(`^File Name:\s*(\S+)`)
	startTimeRe    = regexp.MustCompile(`^File Start Time:\s*([0-9:]+)`)
	endTimeRe      = regexp.MustCompile(`^File End Time:\s*([0-9:]+)`)
	numSeizuresRe  = regexp.MustCompile(`^Number of Seizures in File:\s*(\d+)`)
	seizureStartRe = regexp.MustCompile(`^Seizure\s*(\d*)\s*Start Time:\s*(\d+)\s*seconds`)
	seizureEndRe   = regexp.MustCompile(`^Seizure\s*(\d*)\s*End Time:\s*(\d+)\s*seconds`)
)

// ParseSummaryFile parses a patient summary like chb01-summary.txt. The
// patient ID is taken from the file name prefix before the first dash.
func ParseSummaryFile(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open summary: %w", err)
	}
	defer f.Close()

	s, err := ParseSummary(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	base := filepath.Base(path)
	if patient, _, found := strings.Cut(base, "-"); found {
		s.PatientID = patient
	} else {
		s.PatientID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}

// ParseSummary parses the annotation text format of the CHB-MIT corpus:
// a preamble with sampling rate and channel montage, then one block per
// EDF file listing its clock times and seizure windows.
func ParseSummary(r io.Reader) (*Summary, error) {
	s := &Summary{}
	seenChannel := map[string]bool{}

	var current *FileAnnotation
	var declared int
	var pendingStart *int

	finish := func() error {
		if current == nil {
			return nil
		}
		if pendingStart != nil {
			return fmt.Errorf("file %s: seizure start at %d seconds has no end", current.FileName, *pendingStart)
		}
		if declared != len(current.Seizures) {
			return fmt.Errorf("file %s declares %d seizures but lists %d", current.FileName, declared, len(current.Seizures))
		}
		s.Files = append(s.Files, *current)
		current = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case samplingRateRe.MatchString(line):
			rate, _ := strconv.Atoi(samplingRateRe.FindStringSubmatch(line)[1])
			s.SamplingRateHz = rate

		case channelRe.MatchString(line):
			label := channelRe.FindStringSubmatch(line)[1]
			// "-" marks an unused slot in the montage
			if label != "-" && !seenChannel[label] {
				seenChannel[label] = true
				s.Channels = append(s.Channels, label)
			}

		case fileNameRe.MatchString(line):
			if err := finish(); err != nil {
				return nil, err
			}
			current = &FileAnnotation{FileName: fileNameRe.FindStringSubmatch(line)[1]}
			declared = 0

		case current != nil && startTimeRe.MatchString(line):
			current.StartTime = startTimeRe.FindStringSubmatch(line)[1]

		case current != nil && endTimeRe.MatchString(line):
			current.EndTime = endTimeRe.FindStringSubmatch(line)[1]

		case current != nil && numSeizuresRe.MatchString(line):
			declared, _ = strconv.Atoi(numSeizuresRe.FindStringSubmatch(line)[1])

		case current != nil && seizureStartRe.MatchString(line):
			if pendingStart != nil {
				return nil, fmt.Errorf("file %s: two seizure starts without an end", current.FileName)
			}
			start, _ := strconv.Atoi(seizureStartRe.FindStringSubmatch(line)[2])
			pendingStart = &start

		case current != nil && seizureEndRe.MatchString(line):
			if pendingStart == nil {
				return nil, fmt.Errorf("file %s: seizure end without a start", current.FileName)
			}
			end, _ := strconv.Atoi(seizureEndRe.FindStringSubmatch(line)[2])
			if end < *pendingStart {
				return nil, fmt.Errorf("file %s: seizure ends at %d seconds, before its start at %d",
					current.FileName, end, *pendingStart)
			}
			current.Seizures = append(current.Seizures, Seizure{
				Number:   len(current.Seizures) + 1,
				StartSec: *pendingStart,
				EndSec:   end,
			})
			pendingStart = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}
	if err := finish(); err != nil {
		return nil, err
	}

	if len(s.Files) == 0 {
		return nil, fmt.Errorf("no file blocks found")
	}

	for i := range s.Files {
		d, err := fileDuration(s.Files[i])
		if err != nil {
			return nil, err
		}
		s.Files[i].DurationSec = d
	}

	return s, nil
}

// fileDuration derives the recording length from the clock times. Hours
// past 23 appear in recordings that run over midnight, so the usual
// time-parsing routines don't apply here.
func fileDuration(f FileAnnotation) (int, error) {
	if f.StartTime == "" || f.EndTime == "" {
		return 0, nil
	}

	start, err := parseClock(f.StartTime)
	if err != nil {
		return 0, fmt.Errorf("file %s: %w", f.FileName, err)
	}
	end, err := parseClock(f.EndTime)
	if err != nil {
		return 0, fmt.Errorf("file %s: %w", f.FileName, err)
	}

	d := end - start
	if d < 0 {
		d += 24 * 3600
	}
	return d, nil
}

func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	var hms [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid clock time %q", s)
		}
		hms[i] = v
	}
	if hms[1] > 59 || hms[2] > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	return hms[0]*3600 + hms[1]*60 + hms[2], nil
}

// AnalyzeFiles parses several summary files concurrently, one goroutine
// per file. Results keep the order of paths.
func AnalyzeFiles(ctx context.Context, paths []string) ([]*Summary, error) {
	summaries := make([]*Summary, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := ParseSummaryFile(path)
			if err != nil {
				return err
			}
			summaries[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}
