package models

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// ScheduleBlock is one fixed interval of the weekly timetable.
// Blocks are identified by their position within a weekday, never by subject.
type ScheduleBlock struct {
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	Subject string `json:"subject" yaml:"subject"`
}

// TimeRange is an HH:MM start/end pair
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayRecord holds everything the user entered for one calendar date.
type DayRecord struct {
	CompletedBlocks    []int             `json:"completedBlocks"`
	SkippedReasons     map[int]string    `json:"skippedReasons"`
	OverriddenSubjects map[int]string    `json:"overriddenSubjects"`
	OverriddenTimes    map[int]TimeRange `json:"overriddenTimes"`
	Notes              string            `json:"notes"`
	LeetCode           bool              `json:"leetcode"`
}

// NewDayRecord returns an empty record with every sub-collection allocated.
func NewDayRecord() DayRecord {
	return DayRecord{
		CompletedBlocks:    []int{},
		SkippedReasons:     make(map[int]string),
		OverriddenSubjects: make(map[int]string),
		OverriddenTimes:    make(map[int]TimeRange),
	}
}

// Normalize allocates any sub-collection a decoded record is missing.
func (d *DayRecord) Normalize() {
	if d.CompletedBlocks == nil {
		d.CompletedBlocks = []int{}
	}
	if d.SkippedReasons == nil {
		d.SkippedReasons = make(map[int]string)
	}
	if d.OverriddenSubjects == nil {
		d.OverriddenSubjects = make(map[int]string)
	}
	if d.OverriddenTimes == nil {
		d.OverriddenTimes = make(map[int]TimeRange)
	}
}

// Clone returns a deep copy of the record.
func (d DayRecord) Clone() DayRecord {
	out := DayRecord{
		CompletedBlocks:    make([]int, len(d.CompletedBlocks)),
		SkippedReasons:     make(map[int]string, len(d.SkippedReasons)),
		OverriddenSubjects: make(map[int]string, len(d.OverriddenSubjects)),
		OverriddenTimes:    make(map[int]TimeRange, len(d.OverriddenTimes)),
		Notes:              d.Notes,
		LeetCode:           d.LeetCode,
	}
	copy(out.CompletedBlocks, d.CompletedBlocks)
	for k, v := range d.SkippedReasons {
		out.SkippedReasons[k] = v
	}
	for k, v := range d.OverriddenSubjects {
		out.OverriddenSubjects[k] = v
	}
	for k, v := range d.OverriddenTimes {
		out.OverriddenTimes[k] = v
	}
	return out
}

// UnmarshalJSON accepts whole-number floats such as 1.0 in completedBlocks
// and drops repeated indices, keeping the first occurrence.
func (d *DayRecord) UnmarshalJSON(data []byte) error {
	type plain DayRecord
	var aux struct {
		plain
		CompletedBlocks []json.Number `json:"completedBlocks"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*d = DayRecord(aux.plain)
	d.CompletedBlocks = nil
	if aux.CompletedBlocks != nil {
		d.CompletedBlocks = make([]int, 0, len(aux.CompletedBlocks))
	}
	seen := make(map[int]bool, len(aux.CompletedBlocks))
	for _, n := range aux.CompletedBlocks {
		idx, ok := ParseBlockIndex(n)
		if !ok {
			return fmt.Errorf("invalid block index %s", n)
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		d.CompletedBlocks = append(d.CompletedBlocks, idx)
	}
	return nil
}

// ParseBlockIndex converts a JSON number to a block index. Whole-number
// floats are accepted; negative and fractional values are not.
func ParseBlockIndex(n json.Number) (int, bool) {
	f, err := n.Float64()
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// IsCompleted reports whether idx is in CompletedBlocks
func (d DayRecord) IsCompleted(idx int) bool {
	for _, c := range d.CompletedBlocks {
		if c == idx {
			return true
		}
	}
	return false
}

// Effective applies this record's overrides for block i to the catalog block.
func (d DayRecord) Effective(i int, block ScheduleBlock) ScheduleBlock {
	if subject, ok := d.OverriddenSubjects[i]; ok && subject != "" {
		block.Subject = subject
	}
	if tr, ok := d.OverriddenTimes[i]; ok {
		block.Start, block.End = tr.Start, tr.End
	}
	return block
}

// TrackerState is the whole persisted document.
type TrackerState struct {
	DailyProgress map[string]DayRecord       `json:"dailyProgress"`
	WeakAreas     []string                   `json:"weakAreas"`
	Reviews       map[string]json.RawMessage `json:"reviews"`
}

// NewTrackerState returns the canonical empty state used on first run.
func NewTrackerState() TrackerState {
	return TrackerState{
		DailyProgress: make(map[string]DayRecord),
		WeakAreas:     []string{},
		Reviews:       make(map[string]json.RawMessage),
	}
}

// Normalize allocates missing collections, including inside every day record.
func (s *TrackerState) Normalize() {
	if s.DailyProgress == nil {
		s.DailyProgress = make(map[string]DayRecord)
	}
	if s.WeakAreas == nil {
		s.WeakAreas = []string{}
	}
	if s.Reviews == nil {
		s.Reviews = make(map[string]json.RawMessage)
	}
	for date, rec := range s.DailyProgress {
		rec.Normalize()
		s.DailyProgress[date] = rec
	}
}

// Clone returns a deep copy of the state.
func (s TrackerState) Clone() TrackerState {
	out := TrackerState{
		DailyProgress: make(map[string]DayRecord, len(s.DailyProgress)),
		WeakAreas:     make([]string, len(s.WeakAreas)),
		Reviews:       make(map[string]json.RawMessage, len(s.Reviews)),
	}
	for date, rec := range s.DailyProgress {
		out.DailyProgress[date] = rec.Clone()
	}
	copy(out.WeakAreas, s.WeakAreas)
	for week, payload := range s.Reviews {
		out.Reviews[week] = append(json.RawMessage(nil), payload...)
	}
	return out
}

// WithDay returns a new state where only date's record is replaced. Other
// records and the review payloads are shared with s.
func (s TrackerState) WithDay(date string, rec DayRecord) TrackerState {
	progress := make(map[string]DayRecord, len(s.DailyProgress)+1)
	for k, v := range s.DailyProgress {
		progress[k] = v
	}
	progress[date] = rec
	return TrackerState{
		DailyProgress: progress,
		WeakAreas:     s.WeakAreas,
		Reviews:       s.Reviews,
	}
}

// TrackedDates returns every date key with a record, ascending.
func (s TrackerState) TrackedDates() []string {
	dates := make([]string, 0, len(s.DailyProgress))
	for date := range s.DailyProgress {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
