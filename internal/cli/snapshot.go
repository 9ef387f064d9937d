package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/snapshot"
)

type SnapshotListCmd struct{}

func (c *SnapshotListCmd) Run(ctx *Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}

	snaps, err := store.ListSnapshots()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	if len(snaps) == 0 {
		ctx.println("No snapshots found.")
		ctx.println("A snapshot is taken automatically once a day while the data is valid.")
		return nil
	}

	ctx.printf("Available snapshots (%d total, keeping most recent %d):\n\n", len(snaps), constants.MaxSnapshots)
	for _, s := range snaps {
		ctx.printf("  %s  %s\n", s.Date, mutedStyle.Render(s.Timestamp))
	}
	return nil
}

type SnapshotCreateCmd struct{}

func (c *SnapshotCreateCmd) Run(ctx *Context) error {
	return ctx.WithLock(func() error {
		store, err := ctx.Tracker()
		if err != nil {
			return err
		}
		if store.ReadOnly() {
			return errors.New("stored data failed validation; refusing to snapshot it")
		}

		created, err := ctx.Snapshots().CreateDailySnapshot(store.State())
		if err != nil {
			return fmt.Errorf("snapshot failed: %w", err)
		}
		if !created {
			ctx.printf("Snapshot for %s already exists\n", store.TodayKey())
			return nil
		}
		ctx.printf("%s Snapshot created for %s\n", okMark, store.TodayKey())
		return nil
	})
}

type SnapshotRestoreCmd struct {
	Snapshot string `arg:"" help:"Snapshot date (YYYY-MM-DD) or key as shown by 'tracker snapshot list'."`
	Yes      bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *SnapshotRestoreCmd) Run(ctx *Context) error {
	key := c.Snapshot
	if clock.ValidDateKey(key) {
		key = snapshot.Key(key)
	}

	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Restore %s?", key)).
			Description("This replaces all current tracking data with the snapshot.").
			Affirmative("Restore").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.println("Restore cancelled.")
			return nil
		}
	}

	return ctx.WithLock(func() error {
		store, err := ctx.Tracker()
		if err != nil {
			return err
		}
		if !store.RestoreFromSnapshot(key) {
			return fmt.Errorf("restore failed: snapshot %s is missing or unreadable", key)
		}
		ctx.printf("%s Restored data from %s\n", okMark, key)
		if store.ReadOnly() {
			ctx.printf("%s The restored data still fails validation; try an older snapshot.\n", warnMark)
		}
		return nil
	})
}
