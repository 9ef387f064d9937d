package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/tracker"
)

type ReviewSetCmd struct {
	Week    string `arg:"" help:"Week identifier (e.g. 2026-W42) or any date in the week."`
	Payload string `arg:"" help:"Review as a JSON document."`
}

func (c *ReviewSetCmd) Run(ctx *Context) error {
	week, err := weekID(c.Week)
	if err != nil {
		return err
	}
	return ctx.mutate(func(store *tracker.Store) error {
		if err := store.SaveReview(week, json.RawMessage(c.Payload)); err != nil {
			return err
		}
		ctx.printf("%s Review saved for %s\n", okMark, week)
		return nil
	})
}

type ReviewShowCmd struct {
	Week string `arg:"" optional:"" help:"Week identifier or date. Omit to list all reviews."`
}

func (c *ReviewShowCmd) Run(ctx *Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}
	reviews := store.State().Reviews

	weeks := make([]string, 0, len(reviews))
	if c.Week != "" {
		week, err := weekID(c.Week)
		if err != nil {
			return err
		}
		if _, ok := reviews[week]; !ok {
			return fmt.Errorf("no review found for %s", week)
		}
		weeks = append(weeks, week)
	} else {
		for week := range reviews {
			weeks = append(weeks, week)
		}
		sort.Strings(weeks)
	}

	if len(weeks) == 0 {
		ctx.println("No reviews saved")
		return nil
	}
	for _, week := range weeks {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, reviews[week], "  ", "  "); err != nil {
			pretty.Reset()
			pretty.Write(reviews[week])
		}
		ctx.printf("%s\n  %s\n", titleStyle.Render(week), pretty.String())
	}
	return nil
}

// weekID accepts an ISO week identifier as is and converts a date to the
// identifier of its week.
func weekID(s string) (string, error) {
	if clock.ValidDateKey(s) {
		return clock.ISOWeekID(s)
	}
	return s, nil
}
