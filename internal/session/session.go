package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/go-ps"

	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// ErrLocked means another live tracker process holds the session.
var ErrLocked = errors.New("another tracker session is running")

// Lock is an exclusive writer session over one state location.
type Lock struct {
	ID   string
	PID  int
	path string
}

// LockPath returns the lockfile path for a config directory.
func LockPath(dir string) string {
	return filepath.Join(dir, constants.SessionLockfileName)
}

// Acquire takes the session lock in dir. A lockfile left by a process that
// is no longer running is replaced.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	lock := &Lock{ID: uuid.New().String(), PID: getpidFunc(), path: LockPath(dir)}
	content := []byte(fmt.Sprintf("%d|%s", lock.PID, lock.ID))

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(lock.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_, werr := f.Write(content)
			cerr := f.Close()
			if werr != nil || cerr != nil {
				os.Remove(lock.path)
				return nil, fmt.Errorf("failed to write lockfile: %w", errors.Join(werr, cerr))
			}
			return lock, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to create lockfile: %w", err)
		}

		holder, err := readHolder(lock.path)
		if err == nil && holder != lock.PID && alive(holder) {
			return nil, fmt.Errorf("%w (pid %d)", ErrLocked, holder)
		}

		logger.Warn("Removing stale session lock", "path", lock.path)
		if err := os.Remove(lock.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	}
	return nil, fmt.Errorf("%w: could not claim %s", ErrLocked, lock.path)
}

// Release removes the lockfile if it still belongs to this session.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if _, id, ok := strings.Cut(strings.TrimSpace(string(data)), "|"); !ok || id != l.ID {
		return nil
	}
	return os.Remove(l.path)
}

// Holder reports the pid recorded in dir's lockfile and whether that
// process is still running.
func Holder(dir string) (int, bool, error) {
	pid, err := readHolder(LockPath(dir))
	if err != nil {
		return 0, false, err
	}
	return pid, alive(pid), nil
}

func readHolder(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pidStr, _, ok := strings.Cut(strings.TrimSpace(string(data)), "|")
	if !ok {
		return 0, errors.New("lockfile is malformed")
	}
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return 0, errors.New("invalid process ID in lockfile")
	}
	return pid, nil
}

func alive(pid int) bool {
	process, err := findProcessFunc(pid)
	return err == nil && process != nil
}
