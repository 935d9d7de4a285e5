// Copyright (c) 2025 Neurotap Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package annotations parses the seizure annotation files that ship with
the CHB-MIT corpus (chbXX-summary.txt) and rolls them up into patient
reports.

A summary file carries a preamble (sampling rate, channel montage) and
one block per EDF file:

	File Name: chb01_03.edf
	File Start Time: 13:43:04
	File End Time: 14:43:04
	Number of Seizures in File: 1
	Seizure Start Time: 2996 seconds
	Seizure End Time: 3036 seconds

Seizure offsets are seconds from the start of the file, so they line up
directly with the timestamp_sec axis the ingest pipeline stores. Clock
times may exceed 23:59:59 when a session runs past midnight; durations
are derived accordingly.

ParseSummaryFile reads one patient; AnalyzeFiles fans out over several
patients concurrently. WriteReport renders the aggregate:

	s, err := annotations.ParseSummaryFile("chb01-summary.txt")
	if err != nil {
		return err
	}
	annotations.WriteReport(os.Stdout, s)

This is offline tooling: it never talks to the ingest service.
*/
package annotations
