package cli

import (
	"fmt"
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	return (&DayCmd{Date: "today"}).Run(ctx)
}

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := resolveDate(store, c.Date)
	if err != nil {
		return err
	}

	ctx.printf("%s", renderDay(store.GetDayStats(date)))
	if store.ReadOnly() {
		ctx.printf("\n%s Stored data failed validation; run 'tracker validate' for details.\n", warnMark)
	}
	return nil
}

func renderDay(st models.DayStats) string {
	var b strings.Builder

	title := fmt.Sprintf("%s, %s", st.DayName, st.DateKey)
	if st.IsToday {
		title += " (today)"
	}
	fmt.Fprintln(&b, titleStyle.Render(title))
	fmt.Fprintln(&b)

	if st.IsRestDay() {
		fmt.Fprintln(&b, "  Rest day, nothing scheduled")
	}

	for i := range st.Schedule {
		block := st.EffectiveBlock(i)
		mark := " "
		subject := block.Subject
		var suffix string

		switch reason, skipped := st.DayData.SkippedReasons[i]; {
		case st.DayData.IsCompleted(i):
			mark = doneStyle.Render(okMark)
			subject = doneStyle.Render(subject)
		case skipped:
			mark = skippedStyle.Render(skipMark)
			suffix = "  " + skippedStyle.Render("skipped: "+reason)
		}
		if _, moved := st.DayData.OverriddenTimes[i]; moved {
			suffix += "  " + mutedStyle.Render("(moved from "+utils.FormatTimeRange(st.Schedule[i].Start, st.Schedule[i].End)+")")
		}

		fmt.Fprintf(&b, "  %s [%d] %-22s %s%s\n", mark, i, utils.FormatTimeRange(block.Start, block.End), subject, suffix)
	}

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "  Progress: %.1fh / %.1fh (%.0f%%)\n", st.CompletedHours, st.TotalHours, st.Percent)
	leetcode := "no"
	if st.DayData.LeetCode {
		leetcode = "yes"
	}
	fmt.Fprintf(&b, "  LeetCode: %s\n", leetcode)
	if notes := strings.TrimSpace(st.DayData.Notes); notes != "" {
		fmt.Fprintf(&b, "  Notes: %s\n", notes)
	}
	return b.String()
}
