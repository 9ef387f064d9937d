package cli

import (
	"fmt"
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/tracker"
)

const barWidth = 30

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}

	streaks := store.Streaks()
	summary := store.ProgressSummary()

	ctx.println(titleStyle.Render("Streaks"))
	ctx.printf("  Current: %d day(s)\n", streaks.Current)
	ctx.printf("  Best:    %d day(s)\n", streaks.Best)
	ctx.printf("  %s\n\n", mutedStyle.Render(fmt.Sprintf("A study day counts when at least %g%% of its planned hours are done.", constants.StreakThresholdPercent)))

	ctx.println(titleStyle.Render("Totals"))
	ctx.printf("  Study hours:   %.1f\n", summary.TotalStudyHours)
	ctx.printf("  LeetCode days: %d\n\n", summary.TotalLeetCode)

	ctx.println(titleStyle.Render("Hours by subject"))
	ranked := tracker.RankedSubjects(summary.SubjectHours)
	if len(ranked) == 0 {
		ctx.println("  No completed blocks yet")
		return nil
	}

	top := summary.SubjectHours[ranked[0]]
	for _, subject := range ranked {
		hours := summary.SubjectHours[subject]
		n := int(hours / top * barWidth)
		if n == 0 && hours > 0 {
			n = 1
		}
		ctx.printf("  %-20s %s %.1fh\n", subject, barStyle.Render(strings.Repeat("█", n)), hours)
	}
	return nil
}
