package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Karthik0484/Progress-Tracker/internal/session"
)

// schemaVersioned is implemented by the SQL-backed providers.
type schemaVersioned interface {
	SchemaVersions() (current, latest int, err error)
}

type DoctorCmd struct{}

type checkResult int

const (
	checkOK checkResult = iota
	checkFail
	checkWarn
	checkSkip
)

func (c *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	report := func(name string, res checkResult, detail string) {
		switch res {
		case checkOK:
			ctx.printf("%s %s: OK\n", okMark, name)
		case checkFail:
			ctx.printf("%s %s: FAIL\n", failMark, name)
			hasError = true
		case checkWarn:
			ctx.printf("%s %s: WARNING\n", warnMark, name)
		case checkSkip:
			ctx.printf("%s %s: SKIPPED\n", skipMark, name)
		}
		if detail != "" {
			ctx.printf("   %s\n", detail)
		}
	}

	reachable := true
	if err := ctx.Provider.Load(); err != nil {
		reachable = false
		report("Storage reachable", checkFail, err.Error())
	} else {
		report("Storage reachable", checkOK, ctx.Provider.GetConfigPath())
	}

	switch sv, ok := ctx.Provider.(schemaVersioned); {
	case !ok:
		report("Schema version", checkSkip, "storage backend has no schema")
	case !reachable:
		report("Schema version", checkSkip, "storage not reachable")
	default:
		current, latest, err := sv.SchemaVersions()
		switch {
		case err != nil:
			report("Schema version", checkFail, err.Error())
		case current != latest:
			report("Schema version", checkFail, fmt.Sprintf("database at version %d, latest is %d", current, latest))
		default:
			report("Schema version", checkOK, fmt.Sprintf("version %d", current))
		}
	}

	if reachable {
		store, err := ctx.Tracker()
		switch {
		case err != nil:
			report("Data validation", checkFail, err.Error())
		case store.ReadOnly():
			report("Data validation", checkFail, fmt.Sprintf("%d problems; run 'tracker validate'", len(store.CorruptionErrors())))
		default:
			report("Data validation", checkOK, "")
		}

		snaps, err := ctx.Snapshots().ListSnapshots()
		switch {
		case err != nil:
			report("Snapshots present", checkWarn, err.Error())
		case len(snaps) == 0:
			report("Snapshots present", checkWarn, "no snapshots yet")
		default:
			report("Snapshots present", checkOK, fmt.Sprintf("latest %s", snaps[0].Date))
		}
	} else {
		report("Data validation", checkSkip, "storage not reachable")
		report("Snapshots present", checkSkip, "storage not reachable")
	}

	if errs := ctx.Catalog.Validate(); len(errs) > 0 {
		report("Schedule valid", checkFail, errs[0])
	} else {
		report("Schedule valid", checkOK, fmt.Sprintf("%.1fh planned per week", ctx.Catalog.WeeklyHours()))
	}

	switch pid, alive, err := session.Holder(ctx.LockDir); {
	case errors.Is(err, os.ErrNotExist):
		report("Session lock", checkOK, "no active session")
	case err != nil:
		report("Session lock", checkWarn, err.Error())
	case alive:
		report("Session lock", checkWarn, fmt.Sprintf("held by running process %d", pid))
	default:
		report("Session lock", checkWarn, fmt.Sprintf("stale lock from process %d; it is cleared on the next edit", pid))
	}

	now := ctx.Clock.Now()
	if now.Year() < 2000 {
		report("Clock/timezone", checkFail, fmt.Sprintf("system clock looks wrong: %s", now.Format(time.RFC3339)))
	} else {
		zone, _ := now.Zone()
		report("Clock/timezone", checkOK, fmt.Sprintf("%s (%s)", now.Format("2006-01-02 15:04"), zone))
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.println("All diagnostics passed!")
	return nil
}
