package constants

import "time"

const (
	AppName            = "tracker"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/tracker/tracker.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys
	StateKey       = "placement_tracker_data"
	SnapshotPrefix = "snapshot_"
	MaxSnapshots   = 3

	// Streak and heatmap thresholds, in percent of planned hours completed
	StreakThresholdPercent = 70.0
	HeatmapLevelOneBelow   = 30.0
	HeatmapLevelTwoBelow   = 70.0

	// RolloverInterval is how often the day boundary is re-checked
	RolloverInterval = time.Minute

	// Session lock
	SessionLockfileName = "tracker-session.lock"

	// Environment variables
	EnvDBConnection = "TRACKER_DB_CONNECTION"
	EnvTestPostgres = "TRACKER_TEST_POSTGRES"

	// Block status values used by the weekly export
	BlockStatusCompleted = "completed"
	BlockStatusSkipped   = "skipped"
	BlockStatusPending   = "pending"
)
