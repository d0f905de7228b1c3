package domain

import "time"

// MaxStoredRuns caps the run history; saving beyond it evicts oldest first.
const MaxStoredRuns = 50

// RunEntry is one stored reconciliation run: the outcome plus the filter
// bounds as submitted and the moment the run finished.
type RunEntry struct {
	ID         string          `json:"id"`
	RunAt      time.Time       `json:"run_at"`
	FromFilter string          `json:"from_filter"`
	ToFilter   string          `json:"to_filter"`
	Results    []MatchedResult `json:"results"`
	Unmatched  []string        `json:"unmatched"`
}

// RosterSnapshot is the cached copy of the last successfully loaded roster.
type RosterSnapshot struct {
	Rows     []RosterEntry `json:"rows"`
	FileName string        `json:"file_name"`
	CachedAt time.Time     `json:"cached_at"`
}
