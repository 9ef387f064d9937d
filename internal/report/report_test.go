package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Karthik0484/Progress-Tracker/internal/models"
)

func sampleReport() models.WeeklyReport {
	return models.WeeklyReport{
		WeekIdentifier: "2026-W42",
		Summary:        models.WeeklySummary{TotalPlannedHours: 4.33, TotalCompletedHours: 3.33, CompletionPercentage: 76.9},
		Streaks:        models.WeeklyStreaks{CurrentStreak: 1, BestStreak: 3, MinThreshold: "70%"},
		DailyBreakdown: []models.WeeklyDay{{
			Date:    "2026-10-12",
			DayName: "Monday",
			Blocks: []models.WeeklyBlock{
				{Time: "8:00 AM – 9:00 AM", Subject: "Math", Status: "completed"},
				{Time: "9:00 AM – 10:00 AM", Subject: "DSA", Status: "skipped", SkipReason: "mock interview"},
			},
		}},
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("2026-W42"); got != "placement-prep-week-2026-W42.json" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleReport()); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"\n  \"weekIdentifier\": \"2026-W42\"",
		"\"minThreshold\": \"70%\"",
		"\"skipReason\": \"mock interview\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "skipReason") != 1 {
		t.Error("skipReason should be omitted for blocks without one")
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := WriteFile(dir, sampleReport())
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if filepath.Base(path) != "placement-prep-week-2026-W42.json" {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got models.WeeklyReport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if got.Summary != sampleReport().Summary {
		t.Errorf("summary = %+v", got.Summary)
	}
}
