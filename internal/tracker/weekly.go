package tracker

import (
	"fmt"
	"math"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/utils"
)

// WeeklyReport summarizes the Monday-Sunday week containing referenceDate.
func (s *Store) WeeklyReport(referenceDate string) (models.WeeklyReport, error) {
	monday, err := clock.MondayOf(referenceDate)
	if err != nil {
		return models.WeeklyReport{}, err
	}
	weekID, err := clock.ISOWeekID(monday)
	if err != nil {
		return models.WeeklyReport{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := streaks(s.catalog, s.state, s.todayKey)
	report := models.WeeklyReport{
		WeekIdentifier: weekID,
		Streaks: models.WeeklyStreaks{
			CurrentStreak: st.Current,
			BestStreak:    st.Best,
			MinThreshold:  fmt.Sprintf("%g%%", constants.StreakThresholdPercent),
		},
		DailyBreakdown: make([]models.WeeklyDay, 0, 7),
	}

	var planned, completed float64
	for i := 0; i < 7; i++ {
		date, err := clock.AddDays(monday, i)
		if err != nil {
			return models.WeeklyReport{}, err
		}
		ds := dayStats(s.catalog, s.state, date, s.todayKey)

		day := models.WeeklyDay{
			Date:                 date,
			DayName:              ds.DayName,
			PlannedHours:         round(ds.TotalHours, 2),
			CompletedHours:       round(ds.CompletedHours, 2),
			CompletionPercentage: round(ds.Percent, 1),
			Blocks:               make([]models.WeeklyBlock, 0, len(ds.Schedule)),
		}
		for idx := range ds.Schedule {
			eff := ds.EffectiveBlock(idx)
			block := models.WeeklyBlock{
				Time:    utils.FormatTimeRange(eff.Start, eff.End),
				Subject: eff.Subject,
				Status:  blockStatus(ds.DayData, idx),
			}
			block.SkipReason = ds.DayData.SkippedReasons[idx]
			day.Blocks = append(day.Blocks, block)
		}

		report.DailyBreakdown = append(report.DailyBreakdown, day)
		planned += ds.TotalHours
		completed += ds.CompletedHours
	}

	var percent float64
	if planned > 0 {
		percent = completed / planned * 100
	}
	report.Summary = models.WeeklySummary{
		TotalPlannedHours:    round(planned, 2),
		TotalCompletedHours:  round(completed, 2),
		CompletionPercentage: round(percent, 1),
	}
	return report, nil
}

func blockStatus(rec models.DayRecord, idx int) string {
	switch {
	case rec.IsCompleted(idx):
		return constants.BlockStatusCompleted
	case rec.SkippedReasons[idx] != "":
		return constants.BlockStatusSkipped
	}
	return constants.BlockStatusPending
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
