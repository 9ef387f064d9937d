package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/Karthik0484/Progress-Tracker/internal/storage"
	"github.com/Karthik0484/Progress-Tracker/internal/storage/postgres"
)

type InitCmd struct {
	Force bool `help:"Delete an existing file-based store before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if err := ctx.removeStoreFile(); err != nil {
			return err
		}
	}

	if err := ctx.Provider.Init(); err != nil {
		return err
	}
	if _, err := ctx.Tracker(); err != nil {
		return err
	}
	ctx.printf("Initialized tracker storage at: %s\n", ctx.Provider.GetConfigPath())
	return nil
}

func (c *Context) removeStoreFile() error {
	switch c.Provider.(type) {
	case *storage.MemoryStore:
		return nil
	case *postgres.Store:
		return errors.New("--force only applies to file-based storage")
	}

	if err := c.Provider.Close(); err != nil {
		return err
	}
	path := c.Provider.GetConfigPath()
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove existing store: %w", err)
	}
	return nil
}
