package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Karthik0484/Progress-Tracker/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// HoursOf converts an HH:MM string to fractional hours (hours + minutes/60).
// Malformed input counts as zero.
func HoursOf(timeStr string) float64 {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return float64(h) + float64(m)/60
}

// DurationHours returns end - start in fractional hours.
func DurationHours(start, end string) float64 {
	return HoursOf(end) - HoursOf(start)
}

// FormatTime12 renders an HH:MM string as a 12-hour clock time ("9:30 AM").
func FormatTime12(timeStr string) string {
	if timeStr == "" {
		return ""
	}
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return timeStr
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return timeStr
	}
	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	hours12 := hours % 12
	if hours12 == 0 {
		hours12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hours12, parts[1], suffix)
}

// FormatTimeRange renders a start/end pair as "9:00 AM – 10:30 AM".
func FormatTimeRange(start, end string) string {
	return fmt.Sprintf("%s – %s", FormatTime12(start), FormatTime12(end))
}
