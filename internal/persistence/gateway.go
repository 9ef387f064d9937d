package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/logger"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/storage"
	"github.com/Karthik0484/Progress-Tracker/internal/validation"
)

// Gateway reads and writes the state document under a single key.
type Gateway struct {
	store storage.Provider
}

func New(store storage.Provider) *Gateway {
	return &Gateway{store: store}
}

// Key is the storage key holding the state document.
func (g *Gateway) Key() string {
	return constants.StateKey
}

// Store exposes the underlying provider for components sharing it.
func (g *Gateway) Store() storage.Provider {
	return g.store
}

// Load returns the persisted state, or the empty state when nothing is
// stored or the stored value cannot be decoded.
func (g *Gateway) Load() models.TrackerState {
	raw, ok, err := g.store.Get(constants.StateKey)
	if err != nil {
		logger.Error("Failed to read state", "key", constants.StateKey, "error", err)
		return models.NewTrackerState()
	}
	if !ok {
		return models.NewTrackerState()
	}

	state, err := Decode([]byte(raw))
	if err != nil {
		logger.Warn("Stored state is unreadable, starting empty", "error", err)
		return models.NewTrackerState()
	}
	return state
}

// LoadDocument returns the stored document as a generic JSON tree for
// validation. ok is false when no document is stored. A document that is
// not valid JSON comes back as nil.
func (g *Gateway) LoadDocument() (doc any, ok bool, err error) {
	raw, ok, err := g.store.Get(constants.StateKey)
	if err != nil || !ok {
		return nil, ok, err
	}
	doc, err = validation.DecodeDocument([]byte(raw))
	if err != nil {
		logger.Warn("Stored state is not valid JSON", "error", err)
		return nil, true, nil
	}
	return doc, true, nil
}

// Save overwrites the stored document with state.
func (g *Gateway) Save(state models.TrackerState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		logger.Error("Failed to encode state", "error", err)
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := g.store.Set(constants.StateKey, string(raw)); err != nil {
		logger.Error("Failed to save state", "key", constants.StateKey, "error", err)
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Decode parses a state document into its typed form with every
// collection allocated.
func Decode(raw []byte) (models.TrackerState, error) {
	var state models.TrackerState
	if err := json.Unmarshal(raw, &state); err != nil {
		return models.NewTrackerState(), err
	}
	state.Normalize()
	return state, nil
}
