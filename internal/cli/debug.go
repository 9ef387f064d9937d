package cli

import (
	"encoding/json"
	"fmt"
)

type DebugDBPathCmd struct{}

func (c *DebugDBPathCmd) Run(ctx *Context) error {
	return ctx.printJSON(map[string]string{"path": ctx.Provider.GetConfigPath()})
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Date to dump (YYYY-MM-DD or 'today')."`
}

func (c *DebugDumpDayCmd) Run(ctx *Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := resolveDate(store, c.Date)
	if err != nil {
		return err
	}
	return ctx.printJSON(store.GetDayStats(date))
}

type DebugDumpStateCmd struct{}

func (c *DebugDumpStateCmd) Run(ctx *Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}
	return ctx.printJSON(store.State())
}

func (c *Context) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	c.println(string(data))
	return nil
}
