package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Karthik0484/Progress-Tracker/internal/models"
)

const filePrefix = "placement-prep-week-"

// Filename is the download name for a week's export.
func Filename(weekID string) string {
	return filePrefix + weekID + ".json"
}

// Encode writes r as indented JSON.
func Encode(w io.Writer, r models.WeeklyReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode weekly report: %w", err)
	}
	return nil
}

// WriteFile saves r into dir under Filename and returns the full path.
func WriteFile(dir string, r models.WeeklyReport) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, Filename(r.WeekIdentifier))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	if err := Encode(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}
