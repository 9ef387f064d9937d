package schedule

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Karthik0484/Progress-Tracker/internal/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if len(c.ScheduleFor("Monday")) == 0 {
		t.Error("expected Monday blocks in the built-in timetable")
	}
	if len(c.ScheduleFor("Sunday")) != 0 {
		t.Error("Sunday should be a rest day in the built-in timetable")
	}
	if c.WeeklyHours() <= 0 {
		t.Error("WeeklyHours() should be positive")
	}
}

func TestScheduleForReturnsCopy(t *testing.T) {
	c := New(map[string][]models.ScheduleBlock{
		"Monday": {{Start: "08:00", End: "09:00", Subject: "Math"}},
	})

	blocks := c.ScheduleFor("Monday")
	blocks[0].Subject = "changed"

	if got := c.ScheduleFor("Monday")[0].Subject; got != "Math" {
		t.Errorf("catalog mutated through ScheduleFor: %q", got)
	}
	if got := c.ScheduleFor("Funday"); len(got) != 0 {
		t.Errorf("unknown day returned %v", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid with lowercase day",
			yaml: `
monday:
  - { start: "08:00", end: "09:00", subject: "Math" }
  - { start: "09:00", end: "10:00", subject: "DSA" }
`,
		},
		{
			name:    "unknown weekday",
			yaml:    "Someday: []",
			wantErr: "unknown weekday",
		},
		{
			name: "overlap",
			yaml: `
Tuesday:
  - { start: "08:00", end: "09:30", subject: "OS" }
  - { start: "09:00", end: "10:00", subject: "DBMS" }
`,
			wantErr: "overlaps",
		},
		{
			name:    "not a mapping",
			yaml:    "- just a list",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Parse() error: %v", err)
				}
				if got := c.ScheduleFor("Monday"); len(got) != 2 {
					t.Errorf("Monday blocks = %v", got)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.yaml")
	content := "Friday:\n  - { start: \"18:00\", end: \"19:30\", subject: \"Mock Interview\" }\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	blocks := c.ScheduleFor("Friday")
	if len(blocks) != 1 || blocks[0].Subject != "Mock Interview" {
		t.Errorf("Friday = %+v", blocks)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
