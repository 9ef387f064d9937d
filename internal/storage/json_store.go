package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var errQuotaExceeded = errors.New("storage quota exceeded")

// JSONStore keeps every key in a single JSON object on disk. Writes go through
// a temp file and rename so a crash never leaves a half-written file.
type JSONStore struct {
	path string
	data map[string]string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.data = make(map[string]string)
	return s.save()
}

func (s *JSONStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tracker init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	data := make(map[string]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	s.data = data

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.data == nil {
		return "", false, ErrNotLoaded
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.data == nil {
		return ErrNotLoaded
	}
	prev, existed := s.data[key]
	s.data[key] = value
	if err := s.save(); err != nil {
		// Keep memory consistent with disk
		if existed {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func (s *JSONStore) Delete(key string) error {
	if s.data == nil {
		return ErrNotLoaded
	}
	prev, existed := s.data[key]
	if !existed {
		return nil
	}
	delete(s.data, key)
	if err := s.save(); err != nil {
		s.data[key] = prev
		return err
	}
	return nil
}

func (s *JSONStore) Keys(prefix string) ([]string, error) {
	if s.data == nil {
		return nil, ErrNotLoaded
	}
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
