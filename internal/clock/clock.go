// Package clock is the single source of "now" for the tracker. Every
// today-guard and rollover check reads the date through a Clock so tests can
// pin it.
package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/utils"
)

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in a fixed location.
type System struct {
	Location *time.Location
}

// NewSystem returns a wall clock for the given IANA timezone ("Local" or empty for the host zone).
func NewSystem(timezone string) (System, error) {
	loc, err := utils.LoadLocation(timezone)
	if err != nil {
		return System{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return System{Location: loc}, nil
}

func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

// Fixed is a manually driven clock.
type Fixed struct {
	mu sync.Mutex
	t  time.Time
}

// NewFixed returns a clock stopped at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

// NewFixedDate returns a clock stopped at noon UTC on dateKey. It panics on a
// malformed date and is meant for tests.
func NewFixedDate(dateKey string) *Fixed {
	d, err := ParseDate(dateKey)
	if err != nil {
		panic(err)
	}
	return NewFixed(d.Add(12 * time.Hour))
}

func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

// Set moves the clock to t
func (f *Fixed) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = t
}

// Advance moves the clock forward by d
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

// TodayKey returns today's date key (YYYY-MM-DD) in the clock's location.
func TodayKey(c Clock) string {
	return DateKey(c.Now())
}

// DateKey formats t as YYYY-MM-DD in t's own location.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD key as midnight UTC. Calendar arithmetic is
// done in UTC so that DST transitions never skip or repeat a day.
func ParseDate(dateKey string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateKey)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateKey, err)
	}
	return t, nil
}

// ValidDateKey reports whether s is a well-formed YYYY-MM-DD key
func ValidDateKey(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// WeekdayNameOf returns the English weekday name ("Monday") of dateKey, or
// an empty string when the key is malformed.
func WeekdayNameOf(dateKey string) string {
	d, err := ParseDate(dateKey)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}

// AddDays shifts a date key by n calendar days.
func AddDays(dateKey string, n int) (string, error) {
	d, err := ParseDate(dateKey)
	if err != nil {
		return "", err
	}
	return DateKey(d.AddDate(0, 0, n)), nil
}

// MondayOf returns the Monday of the week containing dateKey.
func MondayOf(dateKey string) (string, error) {
	d, err := ParseDate(dateKey)
	if err != nil {
		return "", err
	}
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return DateKey(d.AddDate(0, 0, -offset)), nil
}

// ISOWeekID returns the ISO-8601 week identifier ("2026-W07") of dateKey.
func ISOWeekID(dateKey string) (string, error) {
	d, err := ParseDate(dateKey)
	if err != nil {
		return "", err
	}
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week), nil
}
