package slack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Huddle is one voice-call record from the browser export.
type Huddle struct {
	ID                 string   `json:"id"`
	ParticipantHistory []string `json:"participant_history"`
	DateStart          int64    `json:"date_start"`
	DateEnd            int64    `json:"date_end"`
}

type export struct {
	Huddles []Huddle `json:"huddles"`
}

// ErrNoExport is returned when no huddle export file is present. Callers
// treat it as an empty result, not a failure.
var ErrNoExport = fmt.Errorf("no slack_huddles export file found")

// FindExportFile locates the most recently modified slack_huddles*.json in
// dir ("~" expands to the home directory). Returns ErrNoExport when none
// matches.
func FindExportFile(dir string) (string, error) {
	dir = expandHome(dir)
	matches, err := filepath.Glob(filepath.Join(dir, "slack_huddles*.json"))
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	var newest string
	var newestMod int64
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().UnixNano() > newestMod {
			newest = path
			newestMod = info.ModTime().UnixNano()
		}
	}
	if newest == "" {
		return "", ErrNoExport
	}
	return newest, nil
}

// LoadHuddles reads and decodes a huddle export file.
func LoadHuddles(path string) ([]Huddle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var ex export
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ex.Huddles, nil
}

// RotateBackup copies the export to a single .bak sibling (replacing any
// previous backup) and removes the original, so a stale export is never
// reported twice.
func RotateBackup(path string) error {
	if err := copyFile(path, path+".bak"); err != nil {
		return fmt.Errorf("failed to back up %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func expandHome(dir string) string {
	if dir == "~" || len(dir) >= 2 && dir[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return dir
		}
		return filepath.Join(home, dir[1:])
	}
	return dir
}
