package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/tempo/internal/adapters/slack"
	"github.com/emiliopalmerini/tempo/internal/config"
)

var huddlesCmd = &cobra.Command{
	Use:   "huddles [start] [end]",
	Short: "Generate task JSON from Slack huddles",
	Long: `Read the browser-exported slack_huddles.json, keep the huddles you
participated in that overlap the date range, and emit a JSON array of tasks
(one per huddle, labeled "Slack huddle #meetings").

After a successful run the export file is rotated to a .bak copy and removed
so a stale export is never reported twice; --keep skips that.

To generate the export:
  1. Open Slack in your browser
  2. Run the bookmarklet to download huddles data
  3. Save it as slack_huddles.json in the huddles directory

Examples:
  tempo huddles                         # current week (or previous, on Mondays)
  tempo huddles 2026-02-02 2026-02-08   # explicit range
  tempo huddles --keep -o slack.json    # keep the export file around`,
	Args: cobra.MaximumNArgs(2),
	RunE: runHuddles,
}

// Flags
var (
	huddlesUserID string
	huddlesPath   string
	huddlesOutput string
	huddlesKeep   bool
)

func init() {
	rootCmd.AddCommand(huddlesCmd)

	huddlesCmd.Flags().StringVar(&huddlesUserID, "slack-user-id", "", "Slack member ID (default: $SLACK_USER_ID)")
	huddlesCmd.Flags().StringVar(&huddlesPath, "huddles-path", "", "Directory with slack_huddles.json (default: $SLACK_HUDDLES_PATH or ~/Downloads)")
	huddlesCmd.Flags().StringVarP(&huddlesOutput, "output", "o", "", "Output file (default: stdout)")
	huddlesCmd.Flags().BoolVar(&huddlesKeep, "keep", false, "Do not rotate and delete the export file afterwards")
}

func runHuddles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if huddlesUserID != "" {
		cfg.SlackUserID = huddlesUserID
	}
	if huddlesPath != "" {
		cfg.HuddlesPath = huddlesPath
	}

	if cfg.SlackUserID == "" {
		statusf("To find your member ID in Slack: Profile -> More -> Copy member ID")
		return fmt.Errorf("SLACK_USER_ID not set; set the environment variable or use --slack-user-id")
	}

	r, err := rangeFromArgs(args)
	if err != nil {
		return err
	}

	statusf("Generating Slack huddles report for user %s", cfg.SlackUserID)
	statusf("Week: %s to %s", r.StartDate, r.EndDate)

	source := &slack.Source{Dir: cfg.HuddlesPath, UserID: cfg.SlackUserID, Logf: statusf}
	tasks, err := source.Tasks(cmd.Context(), r)
	if err != nil {
		return err
	}

	if source.ExportPath() == "" {
		// Missing export is an empty result, not an error.
		return writeTaskJSON(nil, huddlesOutput)
	}

	if len(tasks) == 0 {
		statusf("No huddles found for the specified period.")
	} else {
		statusf("Found %d huddles", len(tasks))
	}
	if err := writeTaskJSON(tasks, huddlesOutput); err != nil {
		return err
	}

	rotateExport(source.ExportPath(), huddlesKeep)
	return nil
}
