package github

import (
	"testing"
	"time"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

func TestTaskName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		repo  string
		want  string
	}{
		{"bracketed tag", "Fix login bug [eng-482]", "auth-service", "Fix login bug #eng482"},
		{"no tag falls back to repo", "Improve caching", "billing-service", "Improve caching #billing-service"},
		{"uppercase with space", "ENG 99 harden retries", "gateway", "harden retries #eng99"},
		{"hash separator", "Ship eng#12 dashboard", "web", "Ship dashboard #eng12"},
		{"tag mid-title collapses spaces", "Fix eng-7 flaky test", "ci", "Fix flaky test #eng7"},
		{"engine is not a tag", "Rebuild engine mounts", "factory", "Rebuild engine mounts #factory"},
		{"empty brackets removed", "Cleanup [ eng 15 ] pass", "tools", "Cleanup pass #eng15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaskName(tt.title, tt.repo); got != tt.want {
				t.Errorf("TaskName(%q, %q) = %q, want %q", tt.title, tt.repo, got, tt.want)
			}
		})
	}
}

const day = "2026-02-04"

func commitAt(email string, hhmm string) Commit {
	at, _ := time.Parse(time.RFC3339, day+"T"+hhmm+":00Z")
	return Commit{AuthorEmail: email, AuthoredAt: at}
}

func weekRange() domain.Range {
	return domain.Range{StartDate: "2026-02-02", EndDate: "2026-02-08"}
}

func TestTasksMergesCloseCommits(t *testing.T) {
	// Two commits 10 minutes apart share one 40-minute session: 30 minutes
	// before the first commit through the second commit.
	prs := []PullRequest{{
		Repo:   "gateway",
		Number: 7,
		Title:  "ENG 99 harden retries",
		Commits: []Commit{
			commitAt("dev@example.com", "10:00"),
			commitAt("dev@example.com", "10:10"),
		},
	}}

	tasks := Tasks(prs, "dev@example.com", weekRange())
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.Name != "harden retries #eng99" {
		t.Errorf("unexpected task name %q", task.Name)
	}
	if len(task.Sessions) != 1 {
		t.Fatalf("expected 1 merged session, got %d", len(task.Sessions))
	}
	if got := task.Sessions[0].Minutes(); got != 40 {
		t.Errorf("merged session = %d min, want 40", got)
	}
	first, _ := time.Parse(time.RFC3339, day+"T10:00:00Z")
	if task.SortTimestamp != first.Unix() {
		t.Errorf("sort timestamp = %d, want first commit %d", task.SortTimestamp, first.Unix())
	}
}

func TestTasksFiltersAuthorAndRange(t *testing.T) {
	outOfRange, _ := time.Parse(time.RFC3339, "2026-02-01T12:00:00Z")
	prs := []PullRequest{{
		Repo:   "web",
		Number: 3,
		Title:  "Improve caching",
		Commits: []Commit{
			commitAt("dev@example.com", "09:00"),
			commitAt("other@example.com", "09:05"),
			{AuthorEmail: "dev@example.com", AuthoredAt: outOfRange},
		},
	}}

	tasks := Tasks(prs, "dev@example.com", weekRange())
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if len(tasks[0].Sessions) != 1 || tasks[0].Sessions[0].Minutes() != 30 {
		t.Errorf("expected a single 30-minute session, got %+v", tasks[0].Sessions)
	}
}

func TestTasksRangeBoundariesInclusive(t *testing.T) {
	startOfRange, _ := time.Parse(time.RFC3339, "2026-02-02T00:00:00Z")
	endOfRange, _ := time.Parse(time.RFC3339, "2026-02-08T23:59:59Z")
	prs := []PullRequest{{
		Repo:   "api",
		Number: 1,
		Title:  "Edge work",
		Commits: []Commit{
			{AuthorEmail: "dev@example.com", AuthoredAt: startOfRange},
			{AuthorEmail: "dev@example.com", AuthoredAt: endOfRange},
		},
	}}

	tasks := Tasks(prs, "dev@example.com", weekRange())
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if len(tasks[0].Sessions) != 2 {
		t.Errorf("expected both boundary commits kept, got %+v", tasks[0].Sessions)
	}
}

func TestTasksSkipsPRsWithoutQualifyingCommits(t *testing.T) {
	prs := []PullRequest{
		{Repo: "web", Number: 3, Title: "Theirs", Commits: []Commit{commitAt("other@example.com", "09:00")}},
		{Repo: "web", Number: 4, Title: "Empty"},
	}
	if tasks := Tasks(prs, "dev@example.com", weekRange()); len(tasks) != 0 {
		t.Errorf("expected no tasks, got %+v", tasks)
	}
}

func TestTasksGroupsAcrossDuplicateEntries(t *testing.T) {
	// The same repo+number appearing twice is one logical change request.
	prs := []PullRequest{
		{Repo: "web", Number: 5, Title: "Split fetch", Commits: []Commit{commitAt("dev@example.com", "09:00")}},
		{Repo: "web", Number: 5, Title: "Split fetch", Commits: []Commit{commitAt("dev@example.com", "14:00")}},
	}
	tasks := Tasks(prs, "dev@example.com", weekRange())
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if len(tasks[0].Sessions) != 2 {
		t.Errorf("expected 2 disjoint sessions, got %+v", tasks[0].Sessions)
	}
}

func TestTasksOrderedByEarliestActivity(t *testing.T) {
	prs := []PullRequest{
		{Repo: "late", Number: 1, Title: "Later", Commits: []Commit{commitAt("dev@example.com", "15:00")}},
		{Repo: "early", Number: 2, Title: "Earlier", Commits: []Commit{commitAt("dev@example.com", "08:00")}},
	}
	tasks := Tasks(prs, "dev@example.com", weekRange())
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].SortTimestamp > tasks[1].SortTimestamp {
		t.Errorf("tasks not ordered by earliest activity: %+v", tasks)
	}
}
