package cli

import (
	"github.com/Karthik0484/Progress-Tracker/internal/report"
)

type ExportCmd struct {
	Date   string `help:"Any date in the week to export (YYYY-MM-DD or 'today')." default:"today"`
	Out    string `help:"Directory to write the report into." type:"path" default:"."`
	Stdout bool   `help:"Print the report instead of writing a file."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := resolveDate(store, c.Date)
	if err != nil {
		return err
	}

	r, err := store.WeeklyReport(date)
	if err != nil {
		return err
	}

	if c.Stdout {
		return report.Encode(ctx.out(), r)
	}

	path, err := report.WriteFile(c.Out, r)
	if err != nil {
		return err
	}
	ctx.printf("%s Weekly report %s written to %s\n", okMark, r.WeekIdentifier, path)
	return nil
}
