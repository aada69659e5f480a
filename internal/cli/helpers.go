package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"

	"github.com/emiliopalmerini/tempo/internal/adapters/slack"
	"github.com/emiliopalmerini/tempo/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Diagnostics and status go to stderr only; stdout carries nothing but the
// task JSON or the rendered report.
func statusf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, color.WhiteString(format, args...))
}

func warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, color.YellowString("Warning: "+format, args...))
}

// rangeFromArgs resolves the reporting window from the optional
// [start] [end] positional arguments.
func rangeFromArgs(args []string) (domain.Range, error) {
	var start, end string
	if len(args) > 0 {
		start = args[0]
	}
	if len(args) > 1 {
		end = args[1]
	}
	return domain.ResolveRange(time.Now(), start, end)
}

// readTasks reads a task JSON array from the optional file argument or
// stdin.
func readTasks(args []string) ([]domain.Task, error) {
	var data []byte
	var err error
	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("no input data provided")
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("invalid task JSON: %w", err)
	}
	return tasks, nil
}

// writeTaskJSON writes tasks as an indented JSON array to path or stdout.
// A nil slice still emits [] so downstream consumers always see an array.
func writeTaskJSON(tasks []domain.Task, path string) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := writeOutput(append(data, '\n'), path); err != nil {
		return err
	}
	if path != "" {
		statusf("JSON data written to %s", path)
	}
	return nil
}

// rotateExport runs the huddle export housekeeping whenever an export was
// actually loaded: rotate to the single .bak copy and remove the original.
// Failures are warnings; they never fail the run.
func rotateExport(path string, keep bool) {
	if keep || path == "" {
		return
	}
	if err := slack.RotateBackup(path); err != nil {
		warnf("%v", err)
		return
	}
	statusf("Export rotated to %s.bak", path)
}

func writeOutput(data []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
