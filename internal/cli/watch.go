package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/tracker"
	"github.com/Karthik0484/Progress-Tracker/internal/tui"
)

type WatchCmd struct {
	Interval time.Duration `help:"How often to check for a new day." default:"1m"`
	Headless bool          `help:"Run without the interactive view, printing day changes."`
}

func (c *WatchCmd) Run(ctx *Context) error {
	interval := c.Interval
	if interval <= 0 {
		interval = constants.RolloverInterval
	}

	if c.Headless {
		ctx.OnRollover = func(ev tracker.RolloverEvent) {
			ctx.printf("New day: %s (was %s)\n", ev.Current, ev.Previous)
			if len(ev.CorruptionErrors) > 0 {
				ctx.printf("%s Stored data failed validation; editing is disabled.\n", warnMark)
			} else if ev.SnapshotCreated {
				ctx.printf("%s Snapshot created for %s\n", okMark, ev.Current)
			}
		}
	}

	return ctx.WithLock(func() error {
		store, err := ctx.Tracker()
		if err != nil {
			return err
		}

		if !c.Headless {
			p := tea.NewProgram(tui.NewModel(store, interval), tea.WithAltScreen())
			_, err := p.Run()
			return err
		}

		sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ctx.printf("Watching for day changes every %s (today is %s). Press Ctrl+C to stop.\n", interval, store.TodayKey())
		if err := store.Watch(sigCtx, interval); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
}
