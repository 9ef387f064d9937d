package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/Karthik0484/Progress-Tracker/internal/constants"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://tracker@localhost:5432/tracker?sslmode=disable"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if got != connStr {
		t.Errorf("GetConnectionString() = %q, want %q", got, connStr)
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("  "); err == nil {
		t.Error("SetConnectionString with blank input should fail")
	}
}

func TestDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("postgres://tracker@localhost/tracker"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete, error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want %v", err, ErrNotFound)
	}
}

func TestResolveConnectionString(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteConnectionString()

	t.Setenv(constants.EnvDBConnection, "")
	if _, _, err := ResolveConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("with nothing configured, error = %v, want %v", err, ErrNotFound)
	}

	if err := SetConnectionString("postgres://from-keyring@localhost/tracker"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	got, src, err := ResolveConnectionString()
	if err != nil || src != SourceKeyring || got != "postgres://from-keyring@localhost/tracker" {
		t.Errorf("keyring resolve = %q, %q, %v", got, src, err)
	}

	t.Setenv(constants.EnvDBConnection, "postgres://from-env@localhost/tracker")
	got, src, err = ResolveConnectionString()
	if err != nil || src != SourceEnv || got != "postgres://from-env@localhost/tracker" {
		t.Errorf("env resolve = %q, %q, %v", got, src, err)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true with the mock keyring")
	}
}
