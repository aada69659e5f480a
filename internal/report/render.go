// Package report renders tasks into the editable time-entry submission text.
// The output is reviewed and saved (or emptied) by the operator before an
// external step submits it; this tool never parses it back.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

const header = `# Time Entry Submission
# Review and confirm the sessions below:
# Save and close this file to submit, or delete all content to cancel

tasks:
`

const sessionTimeLayout = "02 Jan 2006, 15:04"

// Render produces the report for the given tasks, ordered ascending by their
// earliest activity. Session starts render in local time. An empty task list
// yields an empty string, which callers report as "nothing to report".
func Render(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return ""
	}

	ordered := make([]domain.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortTimestamp < ordered[j].SortTimestamp
	})

	var b strings.Builder
	b.WriteString(header)
	for _, task := range ordered {
		fmt.Fprintf(&b, "  - taskName: %q\n", task.Name)
		b.WriteString("    focus:\n")
		for _, s := range task.Sessions {
			start := time.Unix(s.Start, 0).Format(sessionTimeLayout)
			fmt.Fprintf(&b, "      - %s, %d min\n", start, s.Minutes())
		}
	}
	return b.String()
}
