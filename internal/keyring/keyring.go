package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/Karthik0484/Progress-Tracker/internal/constants"
)

var (
	// ErrNotFound is returned when no connection string is stored
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Source identifies where a resolved connection string came from.
type Source string

const (
	SourceEnv     Source = "environment"
	SourceKeyring Source = "keyring"
)

func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

func SetConnectionString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func DeleteConnectionString() error {
	if err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// ResolveConnectionString returns the PostgreSQL connection string to use
// when storage is configured as "postgres". The environment wins over the
// keyring.
func ResolveConnectionString() (string, Source, error) {
	if v := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); v != "" {
		return v, SourceEnv, nil
	}
	connStr, err := GetConnectionString()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", "", fmt.Errorf("no connection string: set %s or run 'tracker keyring set': %w", constants.EnvDBConnection, err)
		}
		return "", "", err
	}
	return connStr, SourceKeyring, nil
}

// IsAvailable reports whether the OS keyring answers a read.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
