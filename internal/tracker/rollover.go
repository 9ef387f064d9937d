package tracker

import (
	"context"
	"time"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/logger"
	"github.com/Karthik0484/Progress-Tracker/internal/validation"
)

// RolloverEvent describes a change of calendar day.
type RolloverEvent struct {
	Previous         string
	Current          string
	CorruptionErrors []string
	SnapshotCreated  bool
}

// CheckRollover re-reads the clock and, when the date has moved forward,
// re-validates the state, takes the new day's snapshot and advances the
// store's notion of today.
func (s *Store) CheckRollover() (RolloverEvent, bool) {
	s.mu.Lock()

	today := clock.TodayKey(s.clock)
	if today <= s.todayKey {
		s.mu.Unlock()
		return RolloverEvent{}, false
	}

	ev := RolloverEvent{Previous: s.todayKey, Current: today}
	s.todayKey = today

	// A store flagged at load stays flagged until a restore.
	if len(s.corruption) == 0 {
		s.corruption = validation.ValidateState(&s.state)
	}
	ev.CorruptionErrors = append([]string(nil), s.corruption...)

	if len(s.corruption) == 0 {
		created, err := s.snapshots.CreateDailySnapshot(s.state)
		if err != nil {
			logger.Error("Failed to create daily snapshot", "error", err)
		}
		ev.SnapshotCreated = created
	}

	cb := s.onRollover
	s.mu.Unlock()

	logger.Info("Day rolled over", "from", ev.Previous, "to", ev.Current, "snapshot", ev.SnapshotCreated)
	if cb != nil {
		cb(ev)
	}
	return ev, true
}

// Watch calls CheckRollover every interval until ctx is done. A zero
// interval uses constants.RolloverInterval.
func (s *Store) Watch(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = constants.RolloverInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.CheckRollover()
		}
	}
}
