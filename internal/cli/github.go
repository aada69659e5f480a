package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/tempo/internal/adapters/github"
	"github.com/emiliopalmerini/tempo/internal/config"
)

var githubCmd = &cobra.Command{
	Use:   "github [start] [end]",
	Short: "Generate task JSON from GitHub commits",
	Long: `Search every repository of the organization for pull requests merged in
the date range, collect your commits on them, and emit a JSON array of tasks
with merged work sessions.

Requires an authenticated gh CLI and a configured git user.email.

Examples:
  tempo github                          # current week (or previous, on Mondays)
  tempo github 2026-02-02 2026-02-08    # explicit range
  tempo github -o github.json           # write JSON to a file
  tempo github | tempo format           # straight to a report`,
	Args: cobra.MaximumNArgs(2),
	RunE: runGithub,
}

// Flags
var (
	githubOrg    string
	githubOutput string
)

func init() {
	rootCmd.AddCommand(githubCmd)

	githubCmd.Flags().StringVar(&githubOrg, "org", "", "GitHub organization (default: $GITHUB_ORG)")
	githubCmd.Flags().StringVarP(&githubOutput, "output", "o", "", "Output file (default: stdout)")
}

func runGithub(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if githubOrg != "" {
		cfg.Org = githubOrg
	}

	r, err := rangeFromArgs(args)
	if err != nil {
		return err
	}

	client := github.NewClient(cfg.Org)

	email := cfg.UserEmail
	if email == "" {
		email, err = client.UserEmail(ctx)
		if err != nil {
			return fmt.Errorf("could not resolve git user email: %w", err)
		}
	}

	// Login is informational only; a failure here is not worth aborting for.
	if login, err := client.Login(ctx); err == nil {
		statusf("Generating time report for %s (%s) in %s", login, email, cfg.Org)
	} else {
		statusf("Generating time report for %s in %s", email, cfg.Org)
	}
	statusf("Week: %s to %s", r.StartDate, r.EndDate)
	statusf("Searching for merged PRs with your commits...")

	source := &github.Source{Client: client, Email: email, Logf: statusf}
	tasks, err := source.Tasks(ctx, r)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		statusf("No commits found for the specified period.")
	} else {
		statusf("Found %d tasks", len(tasks))
	}
	return writeTaskJSON(tasks, githubOutput)
}
