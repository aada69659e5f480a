package cli

import (
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/tempo/internal/report"
)

var formatCmd = &cobra.Command{
	Use:   "format [input]",
	Short: "Render task JSON into the editable time-entry report",
	Long: `Read a JSON array of tasks from a file or stdin and render the
time-entry submission text, ordered by earliest activity.

Examples:
  tempo github | tempo format
  tempo format tasks.json -o report.txt
  cat github.json slack.json | jq -s add | tempo format`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

var formatOutput string

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVarP(&formatOutput, "output", "o", "", "Output file (default: stdout)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	tasks, err := readTasks(args)
	if err != nil {
		return err
	}

	out := report.Render(tasks)
	if out == "" {
		statusf("No tasks to report")
		return nil
	}

	if err := writeOutput([]byte(out), formatOutput); err != nil {
		return err
	}
	if formatOutput != "" {
		statusf("Report written to %s", formatOutput)
	}
	return nil
}
