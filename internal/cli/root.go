package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tempo",
	Short: "Generate editable time-entry reports from your work activity",
	Long: `tempo aggregates personal work activity - commits on merged pull
requests and Slack huddle participation - into merged work sessions and
renders them as an editable time-entry report.

Dates are YYYY-MM-DD. With no dates the range is this week's Monday through
today, or the previous full week when run on a Monday.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
