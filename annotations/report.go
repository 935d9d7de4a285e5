// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package annotations

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Report aggregates a patient's summary for display.
type Report struct {
	PatientID         string
	TotalFiles        int
	FilesWithSeizures int
	TotalSeizures     int
	TotalDurationSec  int
	TotalSeizureSec   int
}

// SeizuresPer24h is the seizure rate normalized to a day of recording.
func (r Report) SeizuresPer24h() float64 {
	if r.TotalDurationSec == 0 {
		return 0
	}
	return float64(r.TotalSeizures) / (float64(r.TotalDurationSec) / 3600) * 24
}

// Report rolls the per-file annotations up to patient totals.
func (s *Summary) Report() Report {
	r := Report{
		PatientID:  s.PatientID,
		TotalFiles: len(s.Files),
	}

	for _, f := range s.Files {
		r.TotalDurationSec += f.DurationSec
		if len(f.Seizures) > 0 {
			r.FilesWithSeizures++
		}
		for _, sz := range f.Seizures {
			r.TotalSeizures++
			r.TotalSeizureSec += sz.DurationSec()
		}
	}

	return r
}

// WriteReport renders a patient report, with per-file details for every
// file that has seizures.
func WriteReport(w io.Writer, s *Summary) error {
	r := s.Report()

	_, err := fmt.Fprintf(w, "Patient %s: %d files (%d with seizures)\n",
		r.PatientID, r.TotalFiles, r.FilesWithSeizures)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  Recorded:  %.1f hours (%s seconds)\n",
		float64(r.TotalDurationSec)/3600, humanize.Comma(int64(r.TotalDurationSec)))
	fmt.Fprintf(w, "  Seizures:  %d (%s seconds total)\n",
		r.TotalSeizures, humanize.Comma(int64(r.TotalSeizureSec)))
	fmt.Fprintf(w, "  Rate:      %.1f seizures/24h\n", r.SeizuresPer24h())

	for _, f := range s.Files {
		if len(f.Seizures) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s: %d seizure(s)\n", f.FileName, len(f.Seizures))
		for _, sz := range f.Seizures {
			fmt.Fprintf(w, "    #%d %d-%d sec (%d sec = %.1f min)\n",
				sz.Number, sz.StartSec, sz.EndSec, sz.DurationSec(), float64(sz.DurationSec())/60)
		}
	}

	return nil
}
