package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"shoebox/internal/importer"
)

func renderSummary(w io.Writer, summary *importer.Summary) {
	rows := [][]string{
		{"Archived", strconv.Itoa(summary.Archived)},
		{"Duplicates deleted", strconv.Itoa(summary.Duplicates)},
		{"Skipped", strconv.Itoa(summary.Skipped)},
		{"Corrupted", strconv.Itoa(summary.Corrupted)},
		{"Failed", strconv.Itoa(summary.Failed)},
	}

	if shouldColorize(w) {
		aligns := []columnAlignment{alignLeft, alignRight}
		fmt.Fprintln(w, renderTable([]string{"Outcome", "Files"}, rows, aligns))
	} else {
		for _, row := range rows {
			fmt.Fprintf(w, "%s: %s\n", row[0], row[1])
		}
	}
	fmt.Fprintf(w, "Run %s finished in %s (%d files)\n", summary.RunID, summary.Duration.Round(time.Millisecond), summary.Total())

	for _, failure := range summary.Failures() {
		fmt.Fprintf(w, "  failed: %s: %v\n", failure.Source, failure.Err)
	}
}
