package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/logger"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/storage"
	"github.com/Karthik0484/Progress-Tracker/internal/validation"
)

// TimestampFormat is ISO-8601 in UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// stored is the on-disk shape of a snapshot. Data stays raw so a restore
// writes back exactly what was saved.
type stored struct {
	Timestamp string          `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Manager keeps one known-good copy of the state per day, capped at
// constants.MaxSnapshots.
type Manager struct {
	store storage.Provider
	clock clock.Clock
}

func NewManager(store storage.Provider, c clock.Clock) *Manager {
	return &Manager{
		store: store,
		clock: c,
	}
}

// Key returns the storage key of the snapshot for date.
func Key(date string) string {
	return constants.SnapshotPrefix + date
}

// CreateDailySnapshot saves state as today's snapshot. It does nothing when
// today already has one or when state fails validation.
func (m *Manager) CreateDailySnapshot(state models.TrackerState) (bool, error) {
	now := m.clock.Now()
	key := Key(clock.DateKey(now))

	_, exists, err := m.store.Get(key)
	if err != nil {
		return false, fmt.Errorf("failed to check snapshot %s: %w", key, err)
	}
	if exists {
		return false, nil
	}

	if errs := validation.ValidateState(&state); len(errs) > 0 {
		logger.Warn("Skipping snapshot creation due to data validation errors", "count", len(errs), "first", errs[0])
		return false, nil
	}

	raw, err := json.Marshal(models.Snapshot{
		Timestamp: now.UTC().Format(TimestampFormat),
		Data:      state,
	})
	if err != nil {
		return false, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := m.store.Set(key, string(raw)); err != nil {
		return false, fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	logger.Info("Created daily snapshot", "key", key)

	if err := m.prune(); err != nil {
		logger.Warn("Failed to prune old snapshots", "error", err)
	}
	return true, nil
}

// ListSnapshots returns every readable snapshot, newest date first.
// Entries that fail to parse are logged and left out.
func (m *Manager) ListSnapshots() ([]models.SnapshotInfo, error) {
	keys, err := m.store.Keys(constants.SnapshotPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	snapshots := make([]models.SnapshotInfo, 0, len(keys))
	for _, key := range keys {
		raw, ok, err := m.store.Get(key)
		if err != nil || !ok {
			logger.Warn("Failed to read snapshot", "key", key, "error", err)
			continue
		}
		var s stored
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			logger.Error("Failed to parse snapshot", "key", key, "error", err)
			continue
		}
		snapshots = append(snapshots, models.SnapshotInfo{
			Key:       key,
			Date:      strings.TrimPrefix(key, constants.SnapshotPrefix),
			Timestamp: s.Timestamp,
		})
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].Date > snapshots[j].Date
	})
	return snapshots, nil
}

func (m *Manager) prune() error {
	snapshots, err := m.ListSnapshots()
	if err != nil {
		return err
	}
	if len(snapshots) <= constants.MaxSnapshots {
		return nil
	}

	for _, s := range snapshots[constants.MaxSnapshots:] {
		if err := m.store.Delete(s.Key); err != nil {
			return fmt.Errorf("failed to remove old snapshot %s: %w", s.Key, err)
		}
		logger.Debug("Pruned snapshot", "key", s.Key)
	}
	return nil
}

// RestoreFromSnapshot overwrites the stored state with the data saved in
// the snapshot at key. It reports false, leaving the state alone, when the
// snapshot is missing, unreadable or has no data.
func (m *Manager) RestoreFromSnapshot(key string) bool {
	raw, ok, err := m.store.Get(key)
	if err != nil || !ok {
		logger.Error("Failed to restore from snapshot", "key", key, "error", err, "found", ok)
		return false
	}

	var s stored
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		logger.Error("Failed to restore from snapshot", "key", key, "error", err)
		return false
	}
	if !hasData(s.Data) {
		logger.Error("Snapshot has no data", "key", key)
		return false
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, s.Data); err != nil {
		logger.Error("Failed to restore from snapshot", "key", key, "error", err)
		return false
	}
	if err := m.store.Set(constants.StateKey, buf.String()); err != nil {
		logger.Error("Failed to write restored state", "key", key, "error", err)
		return false
	}

	logger.Info("Restored state from snapshot", "key", key)
	return true
}

func hasData(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}
