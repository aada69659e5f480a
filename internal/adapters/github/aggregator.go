package github

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

// Each commit is assumed to cap 30 minutes of preceding work. This is a
// heuristic, not a measurement; overlapping windows merge into one session.
const commitSessionOffset = 30 * time.Minute

var (
	engTagPattern = regexp.MustCompile(`(?i)\beng\s*[#-]?\s*(\d+)\b`)
	emptyBrackets = regexp.MustCompile(`\[\s*\]`)
	spaceRuns     = regexp.MustCompile(`\s+`)
)

// TaskName derives the report label from a PR title. An embedded ticket
// reference like "[eng-482]" or "ENG 99" becomes a "#eng482" style suffix
// and is stripped from the visible name; without one the repository name is
// used as the tag.
func TaskName(title, repo string) string {
	cleaned := cleanTitle(engTagPattern.ReplaceAllString(title, ""))
	if m := engTagPattern.FindStringSubmatch(title); m != nil {
		return fmt.Sprintf("%s #eng%s", cleaned, m[1])
	}
	return fmt.Sprintf("%s #%s", cleaned, repo)
}

func cleanTitle(title string) string {
	title = emptyBrackets.ReplaceAllString(title, "")
	title = spaceRuns.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}

// Tasks aggregates pull request commits into report tasks. Commits are
// grouped by repository and PR number, filtered to the given author email
// and to the range bounds (both ends inclusive), then merged into sessions
// with the per-commit offset. PRs left without qualifying commits produce no
// task. The result is ordered by earliest activity.
func Tasks(prs []PullRequest, authorEmail string, r domain.Range) []domain.Task {
	type group struct {
		title string
		repo  string
		times []int64
	}
	groups := make(map[string]*group)
	var keys []string

	for _, pr := range prs {
		key := fmt.Sprintf("%s#%d", pr.Repo, pr.Number)
		g, ok := groups[key]
		if !ok {
			g = &group{title: pr.Title, repo: pr.Repo}
			groups[key] = g
			keys = append(keys, key)
		}
		for _, c := range pr.Commits {
			if c.AuthorEmail != authorEmail {
				continue
			}
			if !r.Contains(c.AuthoredAt) {
				continue
			}
			g.times = append(g.times, c.AuthoredAt.Unix())
		}
	}

	var tasks []domain.Task
	for _, key := range keys {
		g := groups[key]
		if len(g.times) == 0 {
			continue
		}
		sort.Slice(g.times, func(i, j int) bool { return g.times[i] < g.times[j] })

		candidates := make([]domain.Session, len(g.times))
		for i, ts := range g.times {
			candidates[i] = domain.Session{Start: ts - int64(commitSessionOffset.Seconds()), End: ts}
		}

		tasks = append(tasks, domain.Task{
			ID:            uuid.NewString(),
			Name:          TaskName(g.title, g.repo),
			Sessions:      domain.MergeSessions(candidates),
			SortTimestamp: g.times[0],
		})
	}

	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].SortTimestamp < tasks[j].SortTimestamp })
	return tasks
}
