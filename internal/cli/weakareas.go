package cli

import (
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/tracker"
)

type WeakAreasListCmd struct{}

func (c *WeakAreasListCmd) Run(ctx *Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}
	areas := store.State().WeakAreas
	if len(areas) == 0 {
		ctx.println("No weak areas recorded")
		return nil
	}
	ctx.println("Weak areas:")
	for i, a := range areas {
		ctx.printf("  [%d] %s\n", i, a)
	}
	return nil
}

type WeakAreasSetCmd struct {
	Lines []string `arg:"" optional:"" help:"One weak area per argument. Blank entries are dropped; no arguments clears the list."`
}

func (c *WeakAreasSetCmd) Run(ctx *Context) error {
	return ctx.mutate(func(store *tracker.Store) error {
		if err := store.UpdateWeakAreas(strings.Join(c.Lines, "\n")); err != nil {
			return err
		}
		ctx.printf("%s %d weak area(s) saved\n", okMark, len(store.State().WeakAreas))
		return nil
	})
}

type WeakAreasAddCmd struct {
	Area []string `arg:"" help:"Weak area to add."`
}

func (c *WeakAreasAddCmd) Run(ctx *Context) error {
	return ctx.mutate(func(store *tracker.Store) error {
		if err := store.AddWeakArea(strings.Join(c.Area, " ")); err != nil {
			return err
		}
		ctx.printf("%s Weak area added\n", okMark)
		return nil
	})
}

type WeakAreasRemoveCmd struct {
	Index int `arg:"" help:"Position as shown by 'tracker weak-areas list'."`
}

func (c *WeakAreasRemoveCmd) Run(ctx *Context) error {
	return ctx.mutate(func(store *tracker.Store) error {
		if err := store.RemoveWeakArea(c.Index); err != nil {
			return err
		}
		ctx.printf("%s Weak area %d removed\n", okMark, c.Index)
		return nil
	})
}
