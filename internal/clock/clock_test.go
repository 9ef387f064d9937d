package clock

import (
	"testing"
	"time"
)

func TestWeekdayNameOf(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-10-12", "Monday"},
		{"2026-10-18", "Sunday"},
		{"2024-02-29", "Thursday"},
		{"not-a-date", ""},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			if got := WeekdayNameOf(tt.date); got != tt.want {
				t.Errorf("WeekdayNameOf(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-10-12", "2026-10-12"},
		{"2026-10-15", "2026-10-12"},
		{"2026-10-18", "2026-10-12"},
		{"2026-01-01", "2025-12-29"},
	}

	for _, tt := range tests {
		got, err := MondayOf(tt.date)
		if err != nil {
			t.Fatalf("MondayOf(%q) returned error: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("MondayOf(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestISOWeekID(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-01-01", "2026-W01"},
		{"2021-01-03", "2020-W53"},
		{"2026-10-15", "2026-W42"},
	}

	for _, tt := range tests {
		got, err := ISOWeekID(tt.date)
		if err != nil {
			t.Fatalf("ISOWeekID(%q) returned error: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("ISOWeekID(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestAddDaysAcrossMonth(t *testing.T) {
	got, err := AddDays("2026-02-28", 1)
	if err != nil {
		t.Fatalf("AddDays returned error: %v", err)
	}
	if got != "2026-03-01" {
		t.Errorf("AddDays = %q, want 2026-03-01", got)
	}
}

func TestFixedClock(t *testing.T) {
	c := NewFixedDate("2026-10-15")
	if got := TodayKey(c); got != "2026-10-15" {
		t.Fatalf("TodayKey = %q, want 2026-10-15", got)
	}

	c.Advance(24 * time.Hour)
	if got := TodayKey(c); got != "2026-10-16" {
		t.Errorf("TodayKey after advance = %q, want 2026-10-16", got)
	}
}

func TestNewSystemRejectsUnknownZone(t *testing.T) {
	if _, err := NewSystem("Mars/Olympus"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
