package cli

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportCmd = &cobra.Command{
	Use:   "export [input]",
	Short: "Re-encode task JSON as JSON, YAML or CSV",
	Long: `Read a JSON array of tasks from a file or stdin and re-encode it for
external analysis. CSV flattens to one row per session.

Examples:
  tempo github | tempo export -f yaml
  tempo export tasks.json -f csv -o sessions.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

// Flags
var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, yaml, csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	tasks, err := readTasks(args)
	if err != nil {
		return err
	}

	var out *os.File
	if exportOutput != "" {
		out, err = os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = out.Close() }()
	} else {
		out = os.Stdout
	}

	switch exportFormat {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(tasks); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "yaml":
		encoder := yaml.NewEncoder(out)
		if err := encoder.Encode(tasks); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	case "csv":
		writer := csv.NewWriter(out)
		defer writer.Flush()

		header := []string{"task", "session_start", "session_end", "minutes", "sort_timestamp"}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, task := range tasks {
			for _, s := range task.Sessions {
				row := []string{
					task.Name,
					fmt.Sprintf("%d", s.Start),
					fmt.Sprintf("%d", s.End),
					fmt.Sprintf("%d", s.Minutes()),
					fmt.Sprintf("%d", task.SortTimestamp),
				}
				if err := writer.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
	default:
		return fmt.Errorf("unsupported format: %s (use json, yaml or csv)", exportFormat)
	}

	if exportOutput != "" {
		statusf("Exported %d tasks to %s", len(tasks), exportOutput)
	}
	return nil
}
