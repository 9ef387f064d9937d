package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/logger"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/persistence"
	"github.com/Karthik0484/Progress-Tracker/internal/validation"
)

// Catalog looks up the fixed timetable for a weekday.
type Catalog interface {
	ScheduleFor(dayName string) []models.ScheduleBlock
}

// Gateway loads and saves the state document.
type Gateway interface {
	LoadDocument() (any, bool, error)
	Save(state models.TrackerState) error
}

// Snapshots keeps daily known-good copies of the state.
type Snapshots interface {
	CreateDailySnapshot(state models.TrackerState) (bool, error)
	ListSnapshots() ([]models.SnapshotInfo, error)
	RestoreFromSnapshot(key string) bool
}

type Options struct {
	Catalog   Catalog
	Clock     clock.Clock
	Gateway   Gateway
	Snapshots Snapshots
	// OnRollover, when set, is called after CheckRollover sees a new day.
	OnRollover func(RolloverEvent)
}

// Store owns the tracker state. All reads and writes go through it.
type Store struct {
	mu sync.Mutex

	catalog    Catalog
	clock      clock.Clock
	gateway    Gateway
	snapshots  Snapshots
	onRollover func(RolloverEvent)

	state      models.TrackerState
	todayKey   string
	corruption []string
	lastSave   error
}

func New(opts Options) (*Store, error) {
	switch {
	case opts.Catalog == nil:
		return nil, errors.New("tracker: catalog is required")
	case opts.Clock == nil:
		return nil, errors.New("tracker: clock is required")
	case opts.Gateway == nil:
		return nil, errors.New("tracker: gateway is required")
	case opts.Snapshots == nil:
		return nil, errors.New("tracker: snapshot manager is required")
	}

	return &Store{
		catalog:    opts.Catalog,
		clock:      opts.Clock,
		gateway:    opts.Gateway,
		snapshots:  opts.Snapshots,
		onRollover: opts.OnRollover,
		state:      models.NewTrackerState(),
	}, nil
}

// Open loads and validates the persisted state. A corrupted document leaves
// the store read-only rather than failing.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() error {
	s.todayKey = clock.TodayKey(s.clock)

	doc, exists, err := s.gateway.LoadDocument()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if !exists {
		s.state = models.NewTrackerState()
		s.corruption = nil
		logger.Debug("No stored state, starting empty")
		return nil
	}

	errs := validation.ValidateDocument(doc)
	state, decodeErr := decodeTree(doc)
	if decodeErr != nil && len(errs) == 0 {
		errs = append(errs, fmt.Sprintf("Data could not be decoded: %v", decodeErr))
	}
	s.state = state
	s.corruption = errs

	if len(errs) > 0 {
		logger.Warn("Stored state failed validation, running read-only", "errors", len(errs))
		for _, e := range errs {
			logger.Debug("Validation error", "detail", e)
		}
		return nil
	}

	s.snapshot()
	return nil
}

func (s *Store) snapshot() {
	created, err := s.snapshots.CreateDailySnapshot(s.state)
	if err != nil {
		logger.Error("Failed to create daily snapshot", "error", err)
		return
	}
	if created {
		logger.Debug("Daily snapshot created", "date", s.todayKey)
	}
}

// decodeTree turns a validated generic document into the typed state. When
// strict decoding fails it falls back to salvaging well-typed values so the
// data can still be viewed.
func decodeTree(doc any) (models.TrackerState, error) {
	if doc == nil {
		return models.NewTrackerState(), nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return salvage(doc), err
	}
	state, err := persistence.Decode(raw)
	if err != nil {
		return salvage(doc), err
	}
	return state, nil
}

// commit installs next as the current state and persists it. A failed save
// is kept for LastSaveError; the in-memory state stays authoritative.
func (s *Store) commit(next models.TrackerState) {
	s.state = next
	if err := s.gateway.Save(next); err != nil {
		s.lastSave = err
		return
	}
	s.lastSave = nil
}

// State returns a deep copy of the current state.
func (s *Store) State() models.TrackerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// DayRecord returns a copy of date's record, empty if none exists.
func (s *Store) DayRecord(date string) models.DayRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordFor(date).Clone()
}

func (s *Store) recordFor(date string) models.DayRecord {
	rec, ok := s.state.DailyProgress[date]
	if !ok {
		return models.NewDayRecord()
	}
	rec.Normalize()
	return rec
}

// TodayKey is the date the store currently considers today. It only moves
// forward through CheckRollover.
func (s *Store) TodayKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.todayKey
}

// CorruptionErrors returns the findings of the last validation pass.
func (s *Store) CorruptionErrors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.corruption...)
}

func (s *Store) ReadOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.corruption) > 0
}

// LastSaveError is the error from the most recent save, or nil if it
// succeeded.
func (s *Store) LastSaveError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSave
}

func (s *Store) ListSnapshots() ([]models.SnapshotInfo, error) {
	return s.snapshots.ListSnapshots()
}

// RestoreFromSnapshot replaces the stored state with the snapshot at key
// and reloads it. The current state is untouched when the restore fails.
func (s *Store) RestoreFromSnapshot(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.snapshots.RestoreFromSnapshot(key) {
		return false
	}
	if err := s.load(); err != nil {
		logger.Error("Failed to reload restored state", "key", key, "error", err)
		return false
	}
	return true
}
