package models

// DayStats is the derived view of one date that every statistic builds on.
type DayStats struct {
	DateKey        string          `json:"dateKey"`
	DayName        string          `json:"dayName"`
	Schedule       []ScheduleBlock `json:"schedule"`
	DayData        DayRecord       `json:"dayData"`
	TotalHours     float64         `json:"totalHours"`
	CompletedHours float64         `json:"completedHours"`
	Percent        float64         `json:"percent"`
	IsToday        bool            `json:"isToday"`
}

// IsRestDay reports whether nothing was planned for the date
func (d DayStats) IsRestDay() bool {
	return d.TotalHours == 0
}

// EffectiveBlock returns block i of the schedule with the day's subject and
// time overrides applied.
func (d DayStats) EffectiveBlock(i int) ScheduleBlock {
	return d.DayData.Effective(i, d.Schedule[i])
}

// Streaks holds the current and best run of valid study days.
type Streaks struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// ProgressSummary aggregates completed work across all tracked dates.
type ProgressSummary struct {
	SubjectHours    map[string]float64 `json:"subjectHours"`
	TotalLeetCode   int                `json:"totalLeetCode"`
	TotalStudyHours float64            `json:"totalStudyHours"`
}

// HeatmapLevel classifies a heatmap cell
type HeatmapLevel string

const (
	HeatmapHidden HeatmapLevel = "hidden"
	HeatmapFuture HeatmapLevel = "future"
	HeatmapEmpty  HeatmapLevel = "empty"
	HeatmapLevel1 HeatmapLevel = "level-1"
	HeatmapLevel2 HeatmapLevel = "level-2"
	HeatmapLevel3 HeatmapLevel = "level-3"
)

// HeatmapCell is one day of the yearly heatmap.
type HeatmapCell struct {
	DateKey string       `json:"dateKey"`
	InYear  bool         `json:"inYear"`
	Percent float64      `json:"percent"`
	Level   HeatmapLevel `json:"level"`
}

// MonthLabel marks the week column where a month starts
type MonthLabel struct {
	Name   string `json:"name"`
	Column int    `json:"column"`
}

// Heatmap is a year of Monday-aligned weeks.
type Heatmap struct {
	Year        int             `json:"year"`
	Weeks       [][]HeatmapCell `json:"weeks"`
	MonthLabels []MonthLabel    `json:"monthLabels"`
}

// WeeklyBlock is one block row of the weekly export.
type WeeklyBlock struct {
	Time       string `json:"time"`
	Subject    string `json:"subject"`
	Status     string `json:"status"`
	SkipReason string `json:"skipReason,omitempty"`
}

// WeeklyDay is one day of the weekly export.
type WeeklyDay struct {
	Date                 string        `json:"date"`
	DayName              string        `json:"dayName"`
	PlannedHours         float64       `json:"plannedHours"`
	CompletedHours       float64       `json:"completedHours"`
	CompletionPercentage float64       `json:"completionPercentage"`
	Blocks               []WeeklyBlock `json:"blocks"`
}

// WeeklySummary totals a week.
type WeeklySummary struct {
	TotalPlannedHours    float64 `json:"totalPlannedHours"`
	TotalCompletedHours  float64 `json:"totalCompletedHours"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

// WeeklyStreaks is the streak section of the weekly export.
type WeeklyStreaks struct {
	CurrentStreak int    `json:"currentStreak"`
	BestStreak    int    `json:"bestStreak"`
	MinThreshold  string `json:"minThreshold"`
}

// WeeklyReport is the export document for one Monday–Sunday week.
type WeeklyReport struct {
	WeekIdentifier string        `json:"weekIdentifier"`
	Summary        WeeklySummary `json:"summary"`
	Streaks        WeeklyStreaks `json:"streaks"`
	DailyBreakdown []WeeklyDay   `json:"dailyBreakdown"`
}
