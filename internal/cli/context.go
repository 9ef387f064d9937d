package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	apperrors "github.com/Karthik0484/Progress-Tracker/internal/errors"
	"github.com/Karthik0484/Progress-Tracker/internal/keyring"
	"github.com/Karthik0484/Progress-Tracker/internal/logger"
	"github.com/Karthik0484/Progress-Tracker/internal/persistence"
	"github.com/Karthik0484/Progress-Tracker/internal/schedule"
	"github.com/Karthik0484/Progress-Tracker/internal/session"
	"github.com/Karthik0484/Progress-Tracker/internal/snapshot"
	"github.com/Karthik0484/Progress-Tracker/internal/storage"
	"github.com/Karthik0484/Progress-Tracker/internal/storage/postgres"
	"github.com/Karthik0484/Progress-Tracker/internal/storage/sqlite"
	"github.com/Karthik0484/Progress-Tracker/internal/tracker"
)

// KeyringConfig selects the Postgres connection string stored in the OS
// keyring or the TRACKER_DB_CONNECTION environment variable.
const KeyringConfig = "postgres"

// Config is the global flag set shared by every command.
type Config struct {
	Path     string
	Schedule string
	Timezone string
}

type Context struct {
	Provider storage.Provider
	Catalog  *schedule.Catalog
	Clock    clock.Clock
	// LockDir holds the session lockfile and the logs.
	LockDir string
	Out     io.Writer
	// OnRollover is called in addition to logging when the day changes.
	OnRollover func(tracker.RolloverEvent)

	tracker *tracker.Store
}

// NewContext resolves the storage provider, schedule and clock for cfg. No
// storage is opened until a command asks for it.
func NewContext(cfg Config) (*Context, error) {
	provider, err := OpenProvider(cfg.Path)
	if err != nil {
		return nil, err
	}

	catalog, err := schedule.Load(ExpandHome(cfg.Schedule))
	if err != nil {
		return nil, err
	}

	c, err := clock.NewSystem(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	return &Context{
		Provider: provider,
		Catalog:  catalog,
		Clock:    c,
		LockDir:  ConfigDir(cfg.Path),
		Out:      os.Stdout,
	}, nil
}

// OpenProvider picks a storage backend from the --config value: a Postgres
// URL or DSN, the literal "postgres" for keyring credentials, ":memory:",
// a .json file, or otherwise a SQLite database path.
func OpenProvider(config string) (storage.Provider, error) {
	switch {
	case config == ":memory:":
		return storage.NewMemoryStore(), nil

	case config == KeyringConfig:
		connStr, source, err := keyring.ResolveConnectionString()
		if err != nil {
			return nil, err
		}
		logger.Debug("Using Postgres connection string", "source", source)
		return postgres.New(connStr), nil

	case postgres.IsConnString(config):
		if err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w\n  Use 'tracker keyring set' or %s and pass --config=%s, or rely on .pgpass",
					err, constants.EnvDBConnection, KeyringConfig)
			}
			return nil, err
		}
		return postgres.New(config), nil

	case strings.HasSuffix(strings.ToLower(config), ".json"):
		return storage.NewJSONStore(ExpandHome(config)), nil
	}

	return sqlite.NewStore(ExpandHome(config)), nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ConfigDir is where logs and the session lock live: next to a file-based
// store, or the default config directory for other backends.
func ConfigDir(config string) string {
	if config == "" || config == ":memory:" || config == KeyringConfig || postgres.IsConnString(config) {
		return filepath.Dir(ExpandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(ExpandHome(config))
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// Tracker loads the provider and opens the tracking store once.
func (c *Context) Tracker() (*tracker.Store, error) {
	if c.tracker != nil {
		return c.tracker, nil
	}
	if err := c.Provider.Load(); err != nil {
		return nil, err
	}

	store, err := tracker.New(tracker.Options{
		Catalog:   c.Catalog,
		Clock:     c.Clock,
		Gateway:   persistence.New(c.Provider),
		Snapshots: c.Snapshots(),
		OnRollover: func(ev tracker.RolloverEvent) {
			logger.Info("Rollover", "from", ev.Previous, "to", ev.Current)
			if c.OnRollover != nil {
				c.OnRollover(ev)
			}
		},
	})
	if err != nil {
		return nil, err
	}
	if err := store.Open(); err != nil {
		return nil, err
	}
	c.tracker = store
	return store, nil
}

func (c *Context) Snapshots() *snapshot.Manager {
	return snapshot.NewManager(c.Provider, c.Clock)
}

// Close releases the storage provider.
func (c *Context) Close() error {
	if c.Provider == nil {
		return nil
	}
	return c.Provider.Close()
}

// WithLock runs fn while holding the single-writer session lock.
func (c *Context) WithLock(fn func() error) error {
	lock, err := session.Acquire(c.LockDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("Failed to release session lock", "error", err)
		}
	}()
	return fn()
}

// mutate opens the store under the session lock, applies fn and translates
// the outcome into a user-facing result.
func (c *Context) mutate(fn func(store *tracker.Store) error) error {
	return c.WithLock(func() error {
		store, err := c.Tracker()
		if err != nil {
			return err
		}
		return c.report(store, fn(store))
	})
}

func (c *Context) report(store *tracker.Store, err error) error {
	var conflict *tracker.TimeConflictError
	switch {
	case errors.Is(err, tracker.ErrNotToday):
		c.printf("%s Only today's record (%s) can be edited; nothing changed.\n", warnMark, store.TodayKey())
		return nil
	case errors.Is(err, tracker.ErrBlankSubject):
		c.printf("%s Subject is blank; nothing changed.\n", warnMark)
		return nil
	case errors.Is(err, tracker.ErrReadOnly):
		return apperrors.WithExitCode(err, apperrors.ExitCorrupted)
	case errors.As(err, &conflict):
		return apperrors.WithExitCode(fmt.Errorf("time override rejected: %w", err), apperrors.ExitRejected)
	case errors.Is(err, tracker.ErrInvalidTimeRange), errors.Is(err, tracker.ErrInvalidIndex), errors.Is(err, tracker.ErrBlankWeakArea):
		return apperrors.WithExitCode(err, apperrors.ExitRejected)
	case err != nil:
		return err
	}

	if saveErr := store.LastSaveError(); saveErr != nil {
		return fmt.Errorf("change was not saved: %w", saveErr)
	}
	return nil
}

// resolveDate turns "" or "today" into the store's current date.
func resolveDate(store *tracker.Store, date string) (string, error) {
	if date == "" || date == "today" {
		return store.TodayKey(), nil
	}
	if !clock.ValidDateKey(date) {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", date)
	}
	return date, nil
}
