package importer

import "time"

// Outcome is the terminal state of a candidate file.
type Outcome string

const (
	// OutcomeArchived: file moved into the archive tree and indexed.
	OutcomeArchived Outcome = "archived"
	// OutcomeDuplicate: content already archived; the source was deleted.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeSkipped: extension outside the configured sets; file untouched.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeCorrupted: image failed the corruption probe; file untouched.
	OutcomeCorrupted Outcome = "corrupted"
	// OutcomeFailed: per-file error; the source stays in place unless the
	// move itself succeeded before a later step failed.
	OutcomeFailed Outcome = "failed"
)

// Result records the fate of a single candidate file.
type Result struct {
	Source  string
	Dest    string
	Outcome Outcome
	Err     error
}

// Summary aggregates one import run.
type Summary struct {
	RunID      string
	Duration   time.Duration
	Archived   int
	Duplicates int
	Skipped    int
	Corrupted  int
	Failed     int
	Results    []Result
	PrunedDirs []string
}

func (s *Summary) add(res Result) {
	s.Results = append(s.Results, res)
	switch res.Outcome {
	case OutcomeArchived:
		s.Archived++
	case OutcomeDuplicate:
		s.Duplicates++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeCorrupted:
		s.Corrupted++
	case OutcomeFailed:
		s.Failed++
	}
}

// Total returns the number of candidate files the run touched.
func (s *Summary) Total() int {
	return len(s.Results)
}

// Failures returns only the failed results.
func (s *Summary) Failures() []Result {
	var out []Result
	for _, res := range s.Results {
		if res.Outcome == OutcomeFailed {
			out = append(out, res)
		}
	}
	return out
}
