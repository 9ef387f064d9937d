package cli

import (
	"fmt"
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/schedule"
	"github.com/Karthik0484/Progress-Tracker/internal/utils"
)

type ScheduleShowCmd struct {
	Day string `arg:"" optional:"" help:"Weekday to show (e.g. Monday). Shows the whole week when omitted."`
}

func (c *ScheduleShowCmd) Run(ctx *Context) error {
	days := schedule.Weekdays
	if c.Day != "" {
		day, ok := matchWeekday(c.Day)
		if !ok {
			return fmt.Errorf("unknown weekday: %s", c.Day)
		}
		days = []string{day}
	}

	for _, day := range days {
		ctx.println(titleStyle.Render(day))
		blocks := ctx.Catalog.ScheduleFor(day)
		if len(blocks) == 0 {
			ctx.println(mutedStyle.Render("  Rest day"))
		}
		for i, b := range blocks {
			ctx.printf("  [%d] %-22s %s\n", i, utils.FormatTimeRange(b.Start, b.End), b.Subject)
		}
		ctx.println()
	}

	if c.Day == "" {
		ctx.printf("Planned per week: %.1fh\n", ctx.Catalog.WeeklyHours())
	}
	return nil
}

func matchWeekday(name string) (string, bool) {
	for _, d := range schedule.Weekdays {
		if strings.EqualFold(d, name) || strings.EqualFold(d[:3], name) {
			return d, true
		}
	}
	return "", false
}
