package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/keyring"
	"github.com/Karthik0484/Progress-Tracker/internal/storage/postgres"
)

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	if !postgres.IsConnString(c.ConnectionString) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if err := postgres.ValidateConnString(c.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// The keyring is encrypted, so an embedded password is allowed here.
		ctx.printf("%s Connection string contains embedded credentials.\n", warnMark)
		ctx.println("   It will be stored as-is in the OS keyring.")
	}

	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	ctx.printf("%s Connection string stored in OS keyring\n", okMark)
	ctx.printf("  Use it with --config=%s\n", KeyringConfig)
	return nil
}

type KeyringGetCmd struct{}

func (c *KeyringGetCmd) Run(ctx *Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'tracker keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}
	ctx.println(maskPassword(connStr))
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	ctx.printf("%s Connection string deleted from OS keyring\n", okMark)
	return nil
}

type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		ctx.printf("%s OS keyring is not available on this system\n", failMark)
		return keyring.ErrKeyringUnavailable
	}
	ctx.printf("%s OS keyring is available\n", okMark)

	_, source, err := keyring.ResolveConnectionString()
	switch {
	case err == nil:
		ctx.printf("%s Connection string found (%s)\n", okMark, source)
	case errors.Is(err, keyring.ErrNotFound):
		ctx.println("No connection string stored")
	default:
		return err
	}
	return nil
}

// maskPassword hides the password of a URL or key=value connection string.
func maskPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		idx := strings.Index(connStr, "://")
		rest := connStr[idx+3:]
		if at := strings.LastIndex(rest, "@"); at != -1 {
			userInfo := rest[:at]
			if colon := strings.Index(userInfo, ":"); colon != -1 {
				return connStr[:idx+3] + userInfo[:colon] + ":****" + rest[at:]
			}
		}
		return connStr
	}

	if !strings.Contains(connStr, "password=") {
		return connStr
	}
	parts := strings.Fields(connStr)
	for i, part := range parts {
		if strings.HasPrefix(part, "password=") {
			parts[i] = "password=****"
		}
	}
	return strings.Join(parts, " ")
}
