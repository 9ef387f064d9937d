package main

import (
	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/Karthik0484/Progress-Tracker/internal/cli"
	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	apperrors "github.com/Karthik0484/Progress-Tracker/internal/errors"
	"github.com/Karthik0484/Progress-Tracker/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Storage location: a SQLite or .json path, a PostgreSQL URL, 'postgres' for keyring credentials, or ':memory:'." env:"TRACKER_DB" default:"${default_config}"`
	Schedule string `help:"YAML timetable to use instead of the built-in one." env:"TRACKER_SCHEDULE"`
	Timezone string `help:"IANA timezone used to decide what 'today' is." env:"TRACKER_TZ"`
	Debug    bool   `help:"Log debug output to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize tracker storage."`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's blocks and progress." default:"1"`
	Day      cli.DayCmd      `cmd:"" help:"Show the record for a day."`
	Toggle   cli.ToggleCmd   `cmd:"" help:"Mark a block done or not done."`
	Skip     cli.SkipCmd     `cmd:"" help:"Record why a block was skipped."`
	Subject  cli.SubjectCmd  `cmd:"" help:"Replace a block's subject for the day."`
	Time     cli.TimeCmd     `cmd:"" help:"Move a block to a different time for the day."`
	Notes    cli.NotesCmd    `cmd:"" help:"Set the day's notes."`
	Leetcode cli.LeetCodeCmd `cmd:"" name:"leetcode" help:"Toggle whether LeetCode practice was done."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show streaks and subject totals."`
	Heatmap  cli.HeatmapCmd  `cmd:"" help:"Show a year of daily progress."`
	Export   cli.ExportCmd   `cmd:"" help:"Write the weekly report as JSON."`
	Watch    cli.WatchCmd    `cmd:"" help:"Launch the interactive view and follow day changes."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored data and the schedule."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`

	WeakAreas struct {
		List   cli.WeakAreasListCmd   `cmd:"" default:"1" help:"List weak areas."`
		Set    cli.WeakAreasSetCmd    `cmd:"" help:"Replace the weak area list."`
		Add    cli.WeakAreasAddCmd    `cmd:"" help:"Add a weak area."`
		Remove cli.WeakAreasRemoveCmd `cmd:"" help:"Remove a weak area."`
	} `cmd:"" name:"weak-areas" help:"Manage weak areas."`

	Review struct {
		Set  cli.ReviewSetCmd  `cmd:"" help:"Save a weekly review."`
		Show cli.ReviewShowCmd `cmd:"" help:"Show saved reviews."`
	} `cmd:"" help:"Manage weekly reviews."`

	Snapshot struct {
		List    cli.SnapshotListCmd    `cmd:"" default:"1" help:"List daily snapshots."`
		Create  cli.SnapshotCreateCmd  `cmd:"" help:"Take today's snapshot now."`
		Restore cli.SnapshotRestoreCmd `cmd:"" help:"Replace current data with a snapshot."`
	} `cmd:"" help:"Manage daily snapshots."`

	ScheduleCmds struct {
		Show cli.ScheduleShowCmd `cmd:"" default:"withargs" help:"Show the weekly timetable."`
	} `cmd:"" name:"schedule" help:"Inspect the weekly timetable."`

	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string."`
		Get    cli.KeyringGetCmd    `cmd:"" help:"Show the stored connection string, masked."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status cli.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`

	DebugCmds struct {
		DBPath    cli.DebugDBPathCmd    `cmd:"" name:"db-path" help:"Show the storage location."`
		DumpDay   cli.DebugDumpDayCmd   `cmd:"" help:"Dump a day's stats as JSON."`
		DumpState cli.DebugDumpStateCmd `cmd:"" help:"Dump the whole tracker state as JSON."`
	} `cmd:"" name:"debug" help:"Debugging helpers."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Study progress tracker for a fixed weekly timetable"),
		kong.UsageOnError(),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: cli.ConfigDir(CLI.Config),
		SessionID: uuid.NewString(),
	}); err != nil {
		apperrors.Fatal(err)
	}

	appCtx, err := cli.NewContext(cli.Config{
		Path:     CLI.Config,
		Schedule: CLI.Schedule,
		Timezone: CLI.Timezone,
	})
	if err != nil {
		apperrors.Fatal(err)
	}

	err = kctx.Run(appCtx)
	if closeErr := appCtx.Close(); closeErr != nil {
		logger.Warn("Failed to close storage", "error", closeErr)
	}
	apperrors.Fatal(err)
}
