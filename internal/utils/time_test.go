package utils

import (
	"math"
	"testing"
)

func TestHoursOf(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"08:00", 8},
		{"09:30", 9.5},
		{"13:45", 13.75},
		{"00:00", 0},
		{"bogus", 0},
		{"12:xx", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := HoursOf(tt.input); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HoursOf(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDurationHours(t *testing.T) {
	if got := DurationHours("08:00", "09:30"); got != 1.5 {
		t.Errorf("DurationHours() = %v, want 1.5", got)
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	got, err := ParseTimeToMinutes("10:15")
	if err != nil {
		t.Fatalf("ParseTimeToMinutes() returned error: %v", err)
	}
	if got != 615 {
		t.Errorf("ParseTimeToMinutes() = %d, want 615", got)
	}

	if _, err := ParseTimeToMinutes("25:00"); err == nil {
		t.Error("expected error for invalid hour")
	}
}

func TestFormatTime12(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"00:15", "12:15 AM"},
		{"09:00", "9:00 AM"},
		{"12:00", "12:00 PM"},
		{"18:30", "6:30 PM"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatTime12(tt.input); got != tt.want {
			t.Errorf("FormatTime12(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("Local") {
		t.Error("Local should be valid")
	}
	if !ValidateTimezone("") {
		t.Error("empty timezone should be valid")
	}
	if ValidateTimezone("Not/AZone") {
		t.Error("Not/AZone should be invalid")
	}
}
