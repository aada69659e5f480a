package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/tempo/internal/adapters/github"
	"github.com/emiliopalmerini/tempo/internal/adapters/slack"
	"github.com/emiliopalmerini/tempo/internal/config"
	"github.com/emiliopalmerini/tempo/internal/domain"
	"github.com/emiliopalmerini/tempo/internal/ports"
	"github.com/emiliopalmerini/tempo/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [start] [end]",
	Short: "Run all sources and render the report in one go",
	Long: `Collect tasks from GitHub and the Slack huddle export, then render the
combined editable time-entry report. Equivalent to piping github and huddles
output through format, without the intermediate files.

Examples:
  tempo report
  tempo report 2026-02-02 2026-02-08 -o report.txt`,
	Args: cobra.MaximumNArgs(2),
	RunE: runReport,
}

// Flags
var (
	reportOrg    string
	reportUserID string
	reportPath   string
	reportOutput string
	reportKeep   bool
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportOrg, "org", "", "GitHub organization (default: $GITHUB_ORG)")
	reportCmd.Flags().StringVar(&reportUserID, "slack-user-id", "", "Slack member ID (default: $SLACK_USER_ID)")
	reportCmd.Flags().StringVar(&reportPath, "huddles-path", "", "Directory with slack_huddles.json (default: $SLACK_HUDDLES_PATH or ~/Downloads)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file (default: stdout)")
	reportCmd.Flags().BoolVar(&reportKeep, "keep", false, "Do not rotate and delete the huddle export afterwards")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if reportOrg != "" {
		cfg.Org = reportOrg
	}
	if reportUserID != "" {
		cfg.SlackUserID = reportUserID
	}
	if reportPath != "" {
		cfg.HuddlesPath = reportPath
	}
	if cfg.SlackUserID == "" {
		return fmt.Errorf("SLACK_USER_ID not set; set the environment variable or use --slack-user-id")
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

	statusf("Generating time report for %s in %s", email, cfg.Org)
	statusf("Week: %s to %s", r.StartDate, r.EndDate)

	huddleSource := &slack.Source{Dir: cfg.HuddlesPath, UserID: cfg.SlackUserID, Logf: statusf}
	sources := []ports.TaskSource{
		&github.Source{Client: client, Email: email, Logf: statusf},
		huddleSource,
	}

	var all []domain.Task
	for _, src := range sources {
		tasks, err := src.Tasks(ctx, r)
		if err != nil {
			return fmt.Errorf("%s: %w", src.Name(), err)
		}
		statusf("%s: %d tasks", src.Name(), len(tasks))
		all = append(all, tasks...)
	}

	// Housekeeping runs whenever the export loaded, even for an empty
	// report, so a consumed export is never reported twice.
	out := report.Render(all)
	if out == "" {
		statusf("No tasks to report")
		rotateExport(huddleSource.ExportPath(), reportKeep)
		return nil
	}
	if err := writeOutput([]byte(out), reportOutput); err != nil {
		return err
	}
	if reportOutput != "" {
		statusf("Report written to %s", reportOutput)
	}

	rotateExport(huddleSource.ExportPath(), reportKeep)
	return nil
}
