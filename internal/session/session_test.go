package session

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/mitchellh/go-ps"
)

type fakeProcess struct{ pid int }

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 1 }
func (p fakeProcess) Executable() string { return "tracker" }

func withProcesses(t *testing.T, self int, running ...int) {
	t.Helper()
	origFind, origPid := findProcessFunc, getpidFunc
	t.Cleanup(func() {
		findProcessFunc, getpidFunc = origFind, origPid
	})

	live := map[int]bool{self: true}
	for _, pid := range running {
		live[pid] = true
	}
	findProcessFunc = func(pid int) (ps.Process, error) {
		if live[pid] {
			return fakeProcess{pid: pid}, nil
		}
		return nil, nil
	}
	getpidFunc = func() int { return self }
}

func TestAcquireAndRelease(t *testing.T) {
	withProcesses(t, 100)
	dir := t.TempDir()

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	data, err := os.ReadFile(LockPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if want := "100|" + lock.ID; string(data) != want {
		t.Errorf("lockfile = %q, want %q", data, want)
	}
	info, _ := os.Stat(LockPath(dir))
	if info.Mode().Perm() != 0o600 {
		t.Errorf("lockfile mode = %v", info.Mode().Perm())
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, err := os.Stat(LockPath(dir)); !os.IsNotExist(err) {
		t.Error("lockfile still present after Release")
	}
	if err := lock.Release(); err != nil {
		t.Errorf("second Release = %v", err)
	}
}

func TestAcquireHeldByLiveProcess(t *testing.T) {
	withProcesses(t, 100, 200)
	dir := t.TempDir()
	if err := os.WriteFile(LockPath(dir), []byte("200|other"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Acquire(dir)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("error = %v, want ErrLocked", err)
	}
	if !strings.Contains(err.Error(), "pid 200") {
		t.Errorf("error should name the holder: %v", err)
	}

	pid, running, err := Holder(dir)
	if err != nil || pid != 200 || !running {
		t.Errorf("Holder() = %d, %v, %v", pid, running, err)
	}
}

func TestAcquireReplacesStaleLock(t *testing.T) {
	tests := map[string]string{
		"dead process": "300|gone",
		"malformed":    "garbage",
		"bad pid":      "abc|id",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			withProcesses(t, 100)
			dir := t.TempDir()
			if err := os.WriteFile(LockPath(dir), []byte(content), 0o600); err != nil {
				t.Fatal(err)
			}

			lock, err := Acquire(dir)
			if err != nil {
				t.Fatalf("Acquire failed: %v", err)
			}
			data, _ := os.ReadFile(LockPath(dir))
			if !strings.HasPrefix(string(data), strconv.Itoa(100)+"|") {
				t.Errorf("lockfile = %q", data)
			}
			lock.Release()
		})
	}
}

func TestReleaseKeepsForeignLock(t *testing.T) {
	withProcesses(t, 100)
	dir := t.TempDir()

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(LockPath(dir), []byte("200|someone-else"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := lock.Release(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(LockPath(dir)); err != nil {
		t.Error("Release removed a lock it does not own")
	}
}
