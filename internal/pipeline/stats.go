package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total            int // Jobs configured.
	Current          int // Jobs reached (1-based index of the last one).
	Created          int
	Skipped          int // Missing folder, or output kept by --skip-existing.
	Failed           int
	TotalOutputBytes int64
}

// Attempted returns the number of jobs that reached ffmpeg (or would have,
// in dry-run).
func (s *RunStats) Attempted() int {
	return s.Created + s.Failed
}

// Clean reports whether the run produced files and nothing failed.
func (s *RunStats) Clean() bool {
	return s.Failed == 0 && s.Created > 0
}
