package cli

import (
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/tracker"
)

// DateFlag is embedded by every command that edits a day record. Only
// today's record is writable; other dates are accepted and ignored.
type DateFlag struct {
	Date string `help:"Date to edit (YYYY-MM-DD or 'today')." default:"today"`
}

func (d DateFlag) resolve(store *tracker.Store) (string, error) {
	return resolveDate(store, d.Date)
}

type ToggleCmd struct {
	DateFlag
	Index int `arg:"" help:"Block index as shown by 'tracker today'."`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	return ctx.mutate(func(store *tracker.Store) error {
		date, err := c.resolve(store)
		if err != nil {
			return err
		}
		if err := store.ToggleBlock(date, c.Index); err != nil {
			return err
		}
		state := "not done"
		if store.DayRecord(date).IsCompleted(c.Index) {
			state = "done"
		}
		st := store.GetDayStats(date)
		ctx.printf("%s Block %d marked %s (%.0f%% of %s)\n", okMark, c.Index, state, st.Percent, date)
		return nil
	})
}

type SkipCmd struct {
	DateFlag
	Index  int      `arg:"" help:"Block index."`
	Reason []string `arg:"" optional:"" help:"Why the block was skipped. Omit to clear the reason."`
}

func (c *SkipCmd) Run(ctx *Context) error {
	reason := strings.Join(c.Reason, " ")
	return ctx.mutate(func(store *tracker.Store) error {
		date, err := c.resolve(store)
		if err != nil {
			return err
		}
		if err := store.UpdateSkipReason(date, c.Index, reason); err != nil {
			return err
		}
		if strings.TrimSpace(reason) == "" {
			ctx.printf("%s Skip reason cleared for block %d\n", okMark, c.Index)
		} else {
			ctx.printf("%s Block %d skipped: %s\n", okMark, c.Index, reason)
		}
		return nil
	})
}

type SubjectCmd struct {
	DateFlag
	Index   int      `arg:"" help:"Block index."`
	Subject []string `arg:"" help:"Subject studied instead of the scheduled one."`
}

func (c *SubjectCmd) Run(ctx *Context) error {
	subject := strings.Join(c.Subject, " ")
	return ctx.mutate(func(store *tracker.Store) error {
		date, err := c.resolve(store)
		if err != nil {
			return err
		}
		if err := store.UpdateOverriddenSubject(date, c.Index, subject); err != nil {
			return err
		}
		ctx.printf("%s Block %d subject set to %q\n", okMark, c.Index, subject)
		return nil
	})
}

type TimeCmd struct {
	DateFlag
	Index int    `arg:"" help:"Block index."`
	Start string `arg:"" help:"New start time (HH:MM)."`
	End   string `arg:"" help:"New end time (HH:MM)."`
}

func (c *TimeCmd) Run(ctx *Context) error {
	return ctx.mutate(func(store *tracker.Store) error {
		date, err := c.resolve(store)
		if err != nil {
			return err
		}
		if err := store.UpdateOverriddenTime(date, c.Index, c.Start, c.End); err != nil {
			return err
		}
		ctx.printf("%s Block %d moved to %s-%s\n", okMark, c.Index, c.Start, c.End)
		return nil
	})
}

type NotesCmd struct {
	DateFlag
	Text []string `arg:"" optional:"" help:"Notes for the day. Omit to clear."`
}

func (c *NotesCmd) Run(ctx *Context) error {
	return ctx.mutate(func(store *tracker.Store) error {
		date, err := c.resolve(store)
		if err != nil {
			return err
		}
		if err := store.UpdateNotes(date, strings.Join(c.Text, " ")); err != nil {
			return err
		}
		ctx.printf("%s Notes saved\n", okMark)
		return nil
	})
}

type LeetCodeCmd struct {
	DateFlag
}

func (c *LeetCodeCmd) Run(ctx *Context) error {
	return ctx.mutate(func(store *tracker.Store) error {
		date, err := c.resolve(store)
		if err != nil {
			return err
		}
		if err := store.ToggleLeetCode(date); err != nil {
			return err
		}
		state := "not done"
		if store.DayRecord(date).LeetCode {
			state = "done"
		}
		ctx.printf("%s LeetCode marked %s\n", okMark, state)
		return nil
	})
}
