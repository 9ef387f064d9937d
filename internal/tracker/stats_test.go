package tracker

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/persistence"
	"github.com/Karthik0484/Progress-Tracker/internal/schedule"
	"github.com/Karthik0484/Progress-Tracker/internal/snapshot"
	"github.com/Karthik0484/Progress-Tracker/internal/storage"
	"github.com/Karthik0484/Progress-Tracker/internal/utils"
)

// history builds a state where each date has the given completed blocks.
func history(days map[string][]int) models.TrackerState {
	state := models.NewTrackerState()
	for date, completed := range days {
		rec := models.NewDayRecord()
		rec.CompletedBlocks = completed
		state = state.WithDay(date, rec)
	}
	return state
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name  string
		today string
		days  map[string][]int
		want  models.Streaks
	}{
		{
			name:  "no data",
			today: tuesday,
			want:  models.Streaks{},
		},
		{
			name:  "rest days are skipped",
			today: tuesday,
			days: map[string][]int{
				"2026-10-05": {0, 1},
				"2026-10-06": {0},
				"2026-10-07": {0},
				"2026-10-12": {0},
				"2026-10-13": {0},
			},
			want: models.Streaks{Current: 1, Best: 3},
		},
		{
			name:  "untracked study day breaks the run",
			today: tuesday,
			days: map[string][]int{
				"2026-10-12": {0, 1},
			},
			want: models.Streaks{Current: 0, Best: 1},
		},
		{
			name:  "run carries across a weekend",
			today: monday,
			days: map[string][]int{
				"2026-10-07": {0},
				"2026-10-12": {1, 0},
			},
			want: models.Streaks{Current: 2, Best: 2},
		},
		{
			name:  "future dates are ignored",
			today: monday,
			days: map[string][]int{
				"2026-10-12": {0, 1},
				"2026-10-13": {0},
				"2026-10-14": {0},
			},
			want: models.Streaks{Current: 1, Best: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seed *models.TrackerState
			if tt.days != nil {
				s := history(tt.days)
				seed = &s
			}
			f := newFixture(t, tt.today, seed)

			got := f.store.Streaks()
			if got != tt.want {
				t.Errorf("Streaks() = %+v, want %+v", got, tt.want)
			}
			if got.Current > got.Best {
				t.Errorf("current %d exceeds best %d", got.Current, got.Best)
			}
		})
	}
}

func TestStreakThresholdIsInclusive(t *testing.T) {
	catalog := schedule.New(map[string][]models.ScheduleBlock{
		"Monday": {
			{Start: "01:00", End: "08:00", Subject: "A"},
			{Start: "08:00", End: "11:00", Subject: "B"},
		},
	})
	seed := history(map[string][]int{monday: {0}})
	f := newFixtureWithCatalog(t, monday, &seed, catalog)

	if p := f.store.GetDayStats(monday).Percent; p < 69.99 || p > 70.01 {
		t.Fatalf("Percent = %v, want 70", p)
	}
	if got := f.store.Streaks(); got.Current != 1 {
		t.Errorf("70%% day should count, got %+v", got)
	}
}

func TestDayStatsBounds(t *testing.T) {
	f := newFixture(t, monday, nil)
	for _, idx := range []int{0, 1, 7} {
		if err := f.store.ToggleBlock(monday, idx); err != nil {
			t.Fatal(err)
		}
	}

	first := f.store.GetDayStats(monday)
	if first.Percent != 100 || first.CompletedHours != first.TotalHours {
		t.Errorf("stats = %+v, completed blocks beyond the schedule must not count", first)
	}
	if second := f.store.GetDayStats(monday); !reflect.DeepEqual(first, second) {
		t.Error("GetDayStats is not repeatable")
	}

	rest := f.store.GetDayStats(sunday)
	if !rest.IsRestDay() || rest.Percent != 0 || rest.IsToday {
		t.Errorf("rest day stats = %+v", rest)
	}
}

func TestSubjectHoursMergesQualifiedNames(t *testing.T) {
	catalog := schedule.New(map[string][]models.ScheduleBlock{
		"Tuesday":  {{Start: "20:00", End: "21:30", Subject: "System Design: Basics"}},
		"Thursday": {{Start: "21:00", End: "21:30", Subject: "System Design (Networking)"}},
	})
	seed := history(map[string][]int{
		tuesday:      {0, 5},
		"2026-10-15": {0},
	})
	rec := seed.DailyProgress["2026-10-15"]
	rec.LeetCode = true
	seed = seed.WithDay("2026-10-15", rec)

	f := newFixtureWithCatalog(t, "2026-10-15", &seed, catalog)

	want := map[string]float64{"System Design": 2.0}
	if got := f.store.SubjectHours(); !reflect.DeepEqual(got, want) {
		t.Errorf("SubjectHours() = %v, want %v", got, want)
	}

	summary := f.store.ProgressSummary()
	if summary.TotalLeetCode != 1 || summary.TotalStudyHours != 2.0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestSubjectHoursUsesOverrides(t *testing.T) {
	f := newFixture(t, monday, nil)
	if err := f.store.UpdateOverriddenSubject(monday, 0, "DSA (Graphs)"); err != nil {
		t.Fatal(err)
	}
	if err := f.store.UpdateOverriddenTime(monday, 1, "09:00", "09:30"); err != nil {
		t.Fatal(err)
	}
	for _, idx := range []int{0, 1} {
		if err := f.store.ToggleBlock(monday, idx); err != nil {
			t.Fatal(err)
		}
	}

	want := map[string]float64{"DSA": 1.5}
	if got := f.store.SubjectHours(); !reflect.DeepEqual(got, want) {
		t.Errorf("SubjectHours() = %v, want %v", got, want)
	}
}

func TestProgressSummaryCountsEachBlockOnce(t *testing.T) {
	mem := storage.NewMemoryStore()
	raw := `{"dailyProgress":{"2026-10-12":{"completedBlocks":[0,0,1,0]}},"weakAreas":[],"reviews":{}}`
	if err := mem.Set(constants.StateKey, raw); err != nil {
		t.Fatal(err)
	}
	fixed := clock.NewFixedDate(monday)
	store, _ := New(Options{Catalog: testCatalog(), Clock: fixed, Gateway: persistence.New(mem), Snapshots: snapshot.NewManager(mem, fixed)})
	if err := store.Open(); err != nil {
		t.Fatal(err)
	}

	summary := store.ProgressSummary()
	if summary.TotalStudyHours != 2 {
		t.Errorf("TotalStudyHours = %v, want 2", summary.TotalStudyHours)
	}
	want := map[string]float64{"Math": 1, "DSA": 1}
	if !reflect.DeepEqual(summary.SubjectHours, want) {
		t.Errorf("SubjectHours = %v, want %v", summary.SubjectHours, want)
	}
}

func TestNormalizeSubject(t *testing.T) {
	tests := map[string]string{
		"DSA (Arrays)":          "DSA",
		"System Design: Basics": "System Design",
		"  OS  ":                "OS",
		"A: b (c)":              "A",
		"":                      "",
	}
	for in, want := range tests {
		if got := NormalizeSubject(in); got != want {
			t.Errorf("NormalizeSubject(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRankedSubjects(t *testing.T) {
	got := RankedSubjects(map[string]float64{"OS": 1, "DSA": 3, "CN": 1})
	want := []string{"DSA", "CN", "OS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankedSubjects() = %v, want %v", got, want)
	}
}

func TestHeatmap(t *testing.T) {
	seed := history(map[string][]int{
		"2026-10-05": {0, 1},
		"2026-10-07": {0},
		"2026-10-12": {0},
	})
	f := newFixture(t, tuesday, &seed)

	hm := f.store.Heatmap(2026)
	if len(hm.Weeks) != 53 {
		t.Fatalf("got %d weeks, want 53", len(hm.Weeks))
	}
	cells := make(map[string]models.HeatmapCell)
	for i, week := range hm.Weeks {
		if len(week) != 7 {
			t.Fatalf("week %d has %d cells", i, len(week))
		}
		for _, c := range week {
			cells[c.DateKey] = c
		}
	}

	if first := hm.Weeks[0][0]; first.DateKey != "2025-12-29" || first.Level != models.HeatmapHidden {
		t.Errorf("first cell = %+v", first)
	}
	if last := hm.Weeks[52][6]; last.DateKey != "2027-01-03" || last.Level != models.HeatmapHidden {
		t.Errorf("last cell = %+v", last)
	}

	levels := map[string]models.HeatmapLevel{
		"2026-01-01": models.HeatmapEmpty,
		"2026-10-05": models.HeatmapLevel3,
		"2026-10-07": models.HeatmapLevel3,
		"2026-10-08": models.HeatmapEmpty,
		"2026-10-12": models.HeatmapLevel2,
		"2026-10-13": models.HeatmapEmpty,
		"2026-10-14": models.HeatmapFuture,
		"2026-12-31": models.HeatmapFuture,
	}
	for date, want := range levels {
		if got := cells[date].Level; got != want {
			t.Errorf("%s level = %q, want %q", date, got, want)
		}
	}

	if len(hm.MonthLabels) != 12 {
		t.Fatalf("got %d month labels, want 12", len(hm.MonthLabels))
	}
	if hm.MonthLabels[0] != (models.MonthLabel{Name: "Jan", Column: 0}) {
		t.Errorf("first label = %+v", hm.MonthLabels[0])
	}
	// Feb 1 2026 is a Sunday, so February starts with the next week.
	if hm.MonthLabels[1] != (models.MonthLabel{Name: "Feb", Column: 5}) {
		t.Errorf("second label = %+v", hm.MonthLabels[1])
	}
}

func TestHeatmapLevelBoundaries(t *testing.T) {
	tests := []struct {
		total   float64
		percent float64
		want    models.HeatmapLevel
	}{
		{0, 0, models.HeatmapEmpty},
		{2, 0, models.HeatmapEmpty},
		{2, 29.9, models.HeatmapLevel1},
		{2, 30, models.HeatmapLevel2},
		{2, 69.9, models.HeatmapLevel2},
		{2, 70, models.HeatmapLevel3},
		{2, 100, models.HeatmapLevel3},
	}
	for _, tt := range tests {
		got := levelFor(models.DayStats{TotalHours: tt.total, Percent: tt.percent})
		if got != tt.want {
			t.Errorf("levelFor(%v%%) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestAvailableYears(t *testing.T) {
	seed := history(map[string][]int{"2024-03-01": {0}, "not-a-date": {0}})
	f := newFixture(t, monday, &seed)

	if got := f.store.AvailableYears(); !reflect.DeepEqual(got, []int{2026, 2024}) {
		t.Errorf("AvailableYears() = %v", got)
	}
}

func TestWeeklyReport(t *testing.T) {
	seed := history(map[string][]int{
		monday:    {0},
		tuesday:   {0},
		wednesday: {0},
	})
	mon := seed.DailyProgress[monday]
	mon.SkippedReasons[1] = "mock interview"
	seed = seed.WithDay(monday, mon)
	wed := seed.DailyProgress[wednesday]
	wed.OverriddenTimes[0] = models.TimeRange{Start: "08:00", End: "08:20"}
	seed = seed.WithDay(wednesday, wed)

	f := newFixture(t, tuesday, &seed)

	report, err := f.store.WeeklyReport("2026-10-15")
	if err != nil {
		t.Fatalf("WeeklyReport failed: %v", err)
	}

	if report.WeekIdentifier != "2026-W42" {
		t.Errorf("WeekIdentifier = %q", report.WeekIdentifier)
	}
	wantSummary := models.WeeklySummary{TotalPlannedHours: 4.33, TotalCompletedHours: 3.33, CompletionPercentage: 76.9}
	if report.Summary != wantSummary {
		t.Errorf("Summary = %+v, want %+v", report.Summary, wantSummary)
	}
	if report.Streaks.MinThreshold != "70%" {
		t.Errorf("MinThreshold = %q", report.Streaks.MinThreshold)
	}
	if len(report.DailyBreakdown) != 7 {
		t.Fatalf("got %d days", len(report.DailyBreakdown))
	}
	if d := report.DailyBreakdown[0]; d.Date != monday || d.DayName != "Monday" || d.CompletionPercentage != 50 {
		t.Errorf("Monday = %+v", d)
	}
	if d := report.DailyBreakdown[6]; d.Date != "2026-10-18" || d.PlannedHours != 0 || len(d.Blocks) != 0 {
		t.Errorf("Sunday = %+v", d)
	}

	monBlocks := report.DailyBreakdown[0].Blocks
	if monBlocks[0].Status != constants.BlockStatusCompleted || monBlocks[0].Subject != "Math" {
		t.Errorf("Monday block 0 = %+v", monBlocks[0])
	}
	if monBlocks[1].Status != constants.BlockStatusSkipped || monBlocks[1].SkipReason != "mock interview" {
		t.Errorf("Monday block 1 = %+v", monBlocks[1])
	}
	if got := report.DailyBreakdown[2].Blocks[0].Time; got != utils.FormatTimeRange("08:00", "08:20") {
		t.Errorf("Wednesday block time = %q, want the overridden range", got)
	}
	if got := report.DailyBreakdown[3].PlannedHours; got != 0 {
		t.Errorf("Thursday planned = %v", got)
	}

	if _, err := f.store.WeeklyReport("15/10/2026"); err == nil {
		t.Error("malformed reference date should fail")
	}
}

func TestCheckRollover(t *testing.T) {
	mem := storage.NewMemoryStore()
	fixed := clock.NewFixed(time.Date(2026, time.October, 12, 23, 59, 0, 0, time.UTC))
	snaps := snapshot.NewManager(mem, fixed)

	var events []RolloverEvent
	store, err := New(Options{
		Catalog:    testCatalog(),
		Clock:      fixed,
		Gateway:    persistence.New(mem),
		Snapshots:  snaps,
		OnRollover: func(ev RolloverEvent) { events = append(events, ev) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Open(); err != nil {
		t.Fatal(err)
	}

	if _, fired := store.CheckRollover(); fired {
		t.Error("rollover fired before midnight")
	}

	fixed.Advance(2 * time.Minute)
	ev, fired := store.CheckRollover()
	if !fired {
		t.Fatal("expected rollover after midnight")
	}
	if ev.Previous != monday || ev.Current != tuesday || !ev.SnapshotCreated {
		t.Errorf("event = %+v", ev)
	}
	if store.TodayKey() != tuesday {
		t.Errorf("TodayKey() = %q", store.TodayKey())
	}
	if _, ok, _ := mem.Get(snapshot.Key(tuesday)); !ok {
		t.Error("no snapshot for the new day")
	}
	if len(events) != 1 {
		t.Errorf("callback ran %d times", len(events))
	}

	if _, fired := store.CheckRollover(); fired {
		t.Error("rollover fired twice for the same day")
	}

	fixed.Set(time.Date(2026, time.October, 11, 9, 0, 0, 0, time.UTC))
	if _, fired := store.CheckRollover(); fired {
		t.Error("clock moving backwards must not roll over")
	}
}

func TestWatchStopsWithContext(t *testing.T) {
	f := newFixture(t, monday, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.store.Watch(ctx, time.Millisecond); !errors.Is(err, context.Canceled) {
		t.Errorf("Watch() = %v, want context.Canceled", err)
	}
}

func TestErrorsClassification(t *testing.T) {
	conflict := &TimeConflictError{Index: 2, Subject: "DSA", Start: "09:00", End: "10:00"}
	if got := conflict.Error(); got != `overlaps block 2 "DSA" (09:00-10:00)` {
		t.Errorf("Error() = %q", got)
	}
	if IsNoop(conflict) || IsNoop(ErrReadOnly) || IsNoop(nil) {
		t.Error("only skipped edits are no-ops")
	}
	if !IsNoop(ErrBlankSubject) {
		t.Error("ErrBlankSubject should be a no-op")
	}
	if constants.StreakThresholdPercent != 70 {
		t.Errorf("threshold = %v", constants.StreakThresholdPercent)
	}
}
