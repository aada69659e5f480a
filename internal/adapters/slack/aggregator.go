package slack

import (
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

// All huddles share one label; they are reviewed as meeting time, not as
// per-task work.
const huddleTaskName = "Slack huddle #meetings"

// Tasks filters huddles to those the user joined that overlap the range, and
// turns each into its own single-session task. Huddles are never merged with
// each other. Durations are floored to whole minutes.
func Tasks(huddles []Huddle, userID string, r domain.Range) []domain.Task {
	rangeStart, rangeEnd := r.Bounds()

	var tasks []domain.Task
	for _, h := range huddles {
		if !slices.Contains(h.ParticipantHistory, userID) {
			continue
		}
		if h.DateStart == 0 || h.DateEnd == 0 {
			continue
		}
		start := time.Unix(h.DateStart, 0)
		end := time.Unix(h.DateEnd, 0)
		if end.Before(rangeStart) || start.After(rangeEnd) {
			continue
		}

		minutes := (h.DateEnd - h.DateStart) / 60
		tasks = append(tasks, domain.Task{
			ID:            uuid.NewString(),
			Name:          huddleTaskName,
			Sessions:      []domain.Session{{Start: h.DateStart, End: h.DateStart + minutes*60}},
			SortTimestamp: h.DateStart,
		})
	}

	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].SortTimestamp < tasks[j].SortTimestamp })
	return tasks
}
