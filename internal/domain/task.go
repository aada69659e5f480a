package domain

// Session is a half-open work interval [Start, End) in epoch seconds,
// with Start <= End.
type Session struct {
	Start int64 `json:"start" yaml:"start"`
	End   int64 `json:"end" yaml:"end"`
}

// Minutes returns the session duration in whole minutes, rounded down.
func (s Session) Minutes() int64 {
	return (s.End - s.Start) / 60
}

// Task is a unit of reportable work: a label (usually carrying a "#tag"
// suffix) and the merged sessions spent on it. SortTimestamp is the earliest
// contributing event's timestamp and orders tasks in the final report.
type Task struct {
	ID            string    `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string    `json:"name" yaml:"name"`
	Sessions      []Session `json:"sessions" yaml:"sessions"`
	SortTimestamp int64     `json:"sort_timestamp" yaml:"sort_timestamp"`
}

// MergeSessions collapses overlapping or touching session candidates into a
// minimal set of disjoint sessions. Candidates must already be sorted
// ascending by Start; the merger keeps a single accumulating session and
// never re-sorts. Running it on its own output is a no-op.
func MergeSessions(candidates []Session) []Session {
	if len(candidates) == 0 {
		return nil
	}

	merged := make([]Session, 0, len(candidates))
	current := candidates[0]

	for _, c := range candidates[1:] {
		if c.Start <= current.End {
			if c.End > current.End {
				current.End = c.End
			}
			continue
		}
		merged = append(merged, current)
		current = c
	}

	return append(merged, current)
}
