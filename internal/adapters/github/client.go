package github

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Commit is a single commit authored inside a merged pull request.
type Commit struct {
	SHA         string
	AuthorEmail string
	Message     string
	AuthoredAt  time.Time
}

// PullRequest groups the commits belonging to one merged change request,
// identified by repository and number.
type PullRequest struct {
	Repo    string
	Number  int
	Title   string
	Commits []Commit
}

// Client shells out to the pre-authenticated gh CLI (and git for the local
// identity). It performs no authentication of its own.
type Client struct {
	org string
}

func NewClient(org string) *Client {
	return &Client{org: org}
}

func (c *Client) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("%s %s failed: exit code %d, stderr: %s",
				name, args[0], exitErr.ExitCode(), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%s %s failed: %w", name, args[0], err)
	}
	return out, nil
}

// Login returns the authenticated GitHub login.
func (c *Client) Login(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "gh", "api", "/user", "--jq", ".login")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// UserEmail returns the author email configured in git.
func (c *Client) UserEmail(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "git", "config", "user.email")
	if err != nil {
		return "", err
	}
	email := strings.TrimSpace(string(out))
	if email == "" {
		return "", fmt.Errorf("git user.email is not configured")
	}
	return email, nil
}

// ListRepos returns the names of all repositories in the organization.
func (c *Client) ListRepos(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "gh", "repo", "list", c.org, "--limit", "1000", "--json", "name")
	if err != nil {
		return nil, err
	}
	var repos []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(out, &repos); err != nil {
		return nil, fmt.Errorf("failed to parse repo list: %w", err)
	}
	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.Name)
	}
	return names, nil
}

// ListMergedPRs returns the pull requests of a repository merged inside the
// range, without their commits.
func (c *Client) ListMergedPRs(ctx context.Context, repo string, r domain.Range) ([]PullRequest, error) {
	out, err := c.run(ctx, "gh", "pr", "list",
		"--repo", c.org+"/"+repo,
		"--state", "merged",
		"--search", fmt.Sprintf("merged:%s..%s", r.StartDate, r.EndDate),
		"--json", "number,title",
		"--limit", "100")
	if err != nil {
		return nil, err
	}
	var list []struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal(out, &list); err != nil {
		return nil, fmt.Errorf("failed to parse PR list for %s: %w", repo, err)
	}
	prs := make([]PullRequest, 0, len(list))
	for _, pr := range list {
		prs = append(prs, PullRequest{Repo: repo, Number: pr.Number, Title: pr.Title})
	}
	return prs, nil
}

type apiCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Email string `json:"email"`
			Date  string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// Commits returns the commits of one pull request.
func (c *Client) Commits(ctx context.Context, repo string, number int) ([]Commit, error) {
	out, err := c.run(ctx, "gh", "api",
		fmt.Sprintf("repos/%s/%s/pulls/%d/commits", c.org, repo, number))
	if err != nil {
		return nil, err
	}
	commits, err := parseCommits(out)
	if err != nil {
		return nil, fmt.Errorf("failed to parse commits for %s#%d: %w", repo, number, err)
	}
	return commits, nil
}

// parseCommits decodes a gh commit list payload. Individual records that
// fail to decode or carry an unparseable timestamp are skipped; one bad
// record never aborts the batch. Only a payload that is not an array at the
// top level is an error.
func parseCommits(data []byte) ([]Commit, error) {
	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	commits := make([]Commit, 0, len(raw))
	for _, item := range raw {
		var ac apiCommit
		if err := json.Unmarshal(item, &ac); err != nil {
			continue
		}
		// Handles both Z-suffixed and offset timestamps.
		authoredAt, err := time.Parse(time.RFC3339, ac.Commit.Author.Date)
		if err != nil {
			continue
		}
		commits = append(commits, Commit{
			SHA:         ac.SHA,
			AuthorEmail: ac.Commit.Author.Email,
			Message:     ac.Commit.Message,
			AuthoredAt:  authoredAt,
		})
	}
	return commits, nil
}
