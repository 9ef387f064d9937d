package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/logger"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/validation"
)

// editDay applies fn to a copy of date's record and commits the result.
// The date must be today according to a fresh clock read.
func (s *Store) editDay(date string, fn func(rec *models.DayRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.corruption) > 0 {
		return ErrReadOnly
	}
	if today := clock.TodayKey(s.clock); date != today {
		logger.Debug("Rejected edit of non-today record", "date", date, "today", today)
		return ErrNotToday
	}

	rec := s.recordFor(date).Clone()
	if err := fn(&rec); err != nil {
		return err
	}
	s.commit(s.state.WithDay(date, rec))
	return nil
}

// ToggleBlock flips completion of block idx. Completing a block clears its
// skip reason. Indices beyond the day's schedule are stored as given.
func (s *Store) ToggleBlock(date string, idx int) error {
	return s.editDay(date, func(rec *models.DayRecord) error {
		if idx < 0 {
			return fmt.Errorf("%w: block %d", ErrInvalidIndex, idx)
		}
		if rec.IsCompleted(idx) {
			rec.CompletedBlocks = removeInt(rec.CompletedBlocks, idx)
			return nil
		}
		rec.CompletedBlocks = insertSorted(rec.CompletedBlocks, idx)
		delete(rec.SkippedReasons, idx)
		return nil
	})
}

// scheduledIndex rejects idx unless it names a block of date's schedule.
func (s *Store) scheduledIndex(date string, idx int) ([]models.ScheduleBlock, error) {
	schedule := s.catalog.ScheduleFor(clock.WeekdayNameOf(date))
	if idx < 0 || idx >= len(schedule) {
		return nil, fmt.Errorf("%w: block %d (%s has %d)", ErrInvalidIndex, idx, date, len(schedule))
	}
	return schedule, nil
}

// UpdateSkipReason records why block idx was skipped and un-completes it.
// A blank reason removes the entry instead.
func (s *Store) UpdateSkipReason(date string, idx int, reason string) error {
	return s.editDay(date, func(rec *models.DayRecord) error {
		if _, err := s.scheduledIndex(date, idx); err != nil {
			return err
		}
		if strings.TrimSpace(reason) == "" {
			delete(rec.SkippedReasons, idx)
			return nil
		}
		rec.SkippedReasons[idx] = reason
		rec.CompletedBlocks = removeInt(rec.CompletedBlocks, idx)
		return nil
	})
}

// UpdateOverriddenSubject replaces block idx's subject for the day. The text
// is stored as given.
func (s *Store) UpdateOverriddenSubject(date string, idx int, subject string) error {
	if strings.TrimSpace(subject) == "" {
		return ErrBlankSubject
	}
	return s.editDay(date, func(rec *models.DayRecord) error {
		if _, err := s.scheduledIndex(date, idx); err != nil {
			return err
		}
		rec.OverriddenSubjects[idx] = subject
		return nil
	})
}

// UpdateOverriddenTime moves block idx to start-end for the day. The new
// range must not overlap any other block's effective range; touching end
// points are allowed.
func (s *Store) UpdateOverriddenTime(date string, idx int, start, end string) error {
	return s.editDay(date, func(rec *models.DayRecord) error {
		schedule, err := s.scheduledIndex(date, idx)
		if err != nil {
			return err
		}
		newStart, err := validation.ParseClock(start)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		}
		newEnd, err := validation.ParseClock(end)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		}
		if newStart >= newEnd {
			return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, start, end)
		}

		for other, block := range schedule {
			if other == idx {
				continue
			}
			block = rec.Effective(other, block)

			otherStart, err := validation.ParseClock(block.Start)
			if err != nil {
				continue
			}
			otherEnd, err := validation.ParseClock(block.End)
			if err != nil {
				continue
			}
			if validation.Overlaps(newStart, newEnd, otherStart, otherEnd) {
				return &TimeConflictError{Index: other, Subject: block.Subject, Start: block.Start, End: block.End}
			}
		}

		rec.OverriddenTimes[idx] = models.TimeRange{Start: start, End: end}
		return nil
	})
}

func (s *Store) UpdateNotes(date, notes string) error {
	return s.editDay(date, func(rec *models.DayRecord) error {
		rec.Notes = notes
		return nil
	})
}

func (s *Store) ToggleLeetCode(date string) error {
	return s.editDay(date, func(rec *models.DayRecord) error {
		rec.LeetCode = !rec.LeetCode
		return nil
	})
}

// UpdateWeakAreas replaces the weak area list with the non-blank lines of
// text, in order.
func (s *Store) UpdateWeakAreas(text string) error {
	var areas []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			areas = append(areas, line)
		}
	}
	if areas == nil {
		areas = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.corruption) > 0 {
		return ErrReadOnly
	}

	next := s.state
	next.WeakAreas = areas
	s.commit(next)
	return nil
}

// AddWeakArea appends one trimmed entry to the weak area list.
func (s *Store) AddWeakArea(area string) error {
	area = strings.TrimSpace(area)
	if area == "" {
		return ErrBlankWeakArea
	}
	current := s.State().WeakAreas
	return s.UpdateWeakAreas(strings.Join(append(current, area), "\n"))
}

// RemoveWeakArea drops the entry at position i.
func (s *Store) RemoveWeakArea(i int) error {
	current := s.State().WeakAreas
	if i < 0 || i >= len(current) {
		return fmt.Errorf("%w: weak area %d", ErrInvalidIndex, i)
	}
	updated := append(current[:i:i], current[i+1:]...)
	return s.UpdateWeakAreas(strings.Join(updated, "\n"))
}

// SaveReview stores payload for weekID, replacing any earlier review.
func (s *Store) SaveReview(weekID string, payload json.RawMessage) error {
	if strings.TrimSpace(weekID) == "" {
		return errors.New("week id cannot be blank")
	}
	if !json.Valid(payload) {
		return errors.New("review payload must be valid JSON")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.corruption) > 0 {
		return ErrReadOnly
	}

	reviews := make(map[string]json.RawMessage, len(s.state.Reviews)+1)
	for k, v := range s.state.Reviews {
		reviews[k] = v
	}
	reviews[weekID] = append(json.RawMessage(nil), payload...)

	next := s.state
	next.Reviews = reviews
	s.commit(next)
	return nil
}

func insertSorted(xs []int, v int) []int {
	i := sort.SearchInts(xs, v)
	if i < len(xs) && xs[i] == v {
		return xs
	}
	out := make([]int, 0, len(xs)+1)
	out = append(out, xs[:i]...)
	out = append(out, v)
	return append(out, xs[i:]...)
}

func removeInt(xs []int, v int) []int {
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
