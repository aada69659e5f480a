package slack

import (
	"context"
	"errors"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

// Source reads the locally exported huddle file and aggregates the user's
// huddles into tasks. A missing export is an empty result.
type Source struct {
	Dir    string
	UserID string
	// Logf receives progress messages for the error stream. May be nil.
	Logf func(format string, args ...any)

	// exportPath is set after a successful load so housekeeping can rotate
	// the right file.
	exportPath string
}

func (s *Source) Name() string { return "slack" }

func (s *Source) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

func (s *Source) Tasks(ctx context.Context, r domain.Range) ([]domain.Task, error) {
	path, err := FindExportFile(s.Dir)
	if errors.Is(err, ErrNoExport) {
		s.logf("No slack_huddles.json file found in %s", s.Dir)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	huddles, err := LoadHuddles(path)
	if err != nil {
		return nil, err
	}
	s.exportPath = path
	s.logf("Loaded %d huddles from %s", len(huddles), path)

	return Tasks(huddles, s.UserID, r), nil
}

// ExportPath returns the export file used by the last Tasks call, or "" when
// none was loaded.
func (s *Source) ExportPath() string { return s.exportPath }
