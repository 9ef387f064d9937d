package models

// Snapshot is a last-known-good copy of the state, one per calendar day.
type Snapshot struct {
	Timestamp string       `json:"timestamp"`
	Data      TrackerState `json:"data"`
}

// SnapshotInfo describes a stored snapshot without its payload
type SnapshotInfo struct {
	Key       string `json:"key"`
	Date      string `json:"date"`
	Timestamp string `json:"timestamp"`
}
