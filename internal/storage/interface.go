package storage

import "errors"

// ErrNotLoaded is returned by providers used before Init or Load
var ErrNotLoaded = errors.New("storage not loaded")

// Provider is a durable string key-value store. The tracker keeps its whole
// state document under one key and each daily snapshot under its own key.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys returns every key starting with prefix, sorted ascending.
	Keys(prefix string) ([]string, error)

	// Utils
	GetConfigPath() string
}
