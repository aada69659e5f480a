package github

import (
	"context"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

// Source fetches merged pull requests through the gh CLI and aggregates the
// author's commits into tasks.
type Source struct {
	Client *Client
	Email  string
	// Logf receives progress messages for the error stream. May be nil.
	Logf func(format string, args ...any)
}

func (s *Source) Name() string { return "github" }

func (s *Source) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

// Tasks walks every repository in the organization, collects merged PRs in
// range and their commits, and aggregates them. A repository or PR that
// fails to list is skipped, matching the best-effort behavior of the
// underlying search.
func (s *Source) Tasks(ctx context.Context, r domain.Range) ([]domain.Task, error) {
	repos, err := s.Client.ListRepos(ctx)
	if err != nil {
		return nil, err
	}
	s.logf("Found %d repositories", len(repos))

	var prs []PullRequest
	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		list, err := s.Client.ListMergedPRs(ctx, repo, r)
		if err != nil || len(list) == 0 {
			continue
		}
		s.logf("  Checking %d PRs in %s...", len(list), repo)
		for i := range list {
			commits, err := s.Client.Commits(ctx, list[i].Repo, list[i].Number)
			if err != nil {
				continue
			}
			list[i].Commits = commits
		}
		prs = append(prs, list...)
	}

	return Tasks(prs, s.Email, r), nil
}
