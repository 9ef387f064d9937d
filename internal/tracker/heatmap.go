package tracker

import (
	"sort"
	"time"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
)

// Heatmap lays out year as Monday-aligned weeks, padding into the
// neighbouring years so every week has seven cells.
func (s *Store) Heatmap(year int) models.Heatmap {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -daysSinceMonday(first))
	end := last.AddDate(0, 0, 6-daysSinceMonday(last))

	hm := models.Heatmap{Year: year}
	var week []models.HeatmapCell
	prevMonth := time.Month(0)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := clock.DateKey(d)
		cell := models.HeatmapCell{DateKey: key, InYear: d.Year() == year}
		if cell.InYear && key <= s.todayKey {
			st := dayStats(s.catalog, s.state, key, s.todayKey)
			cell.Percent = st.Percent
			cell.Level = levelFor(st)
		} else if cell.InYear {
			cell.Level = models.HeatmapFuture
		} else {
			cell.Level = models.HeatmapHidden
		}
		week = append(week, cell)

		if len(week) == 7 {
			col := len(hm.Weeks)
			for _, c := range week {
				if !c.InYear {
					continue
				}
				cd, _ := clock.ParseDate(c.DateKey)
				if cd.Month() != prevMonth {
					hm.MonthLabels = append(hm.MonthLabels, models.MonthLabel{Name: cd.Month().String()[:3], Column: col})
					prevMonth = cd.Month()
				}
				break
			}
			hm.Weeks = append(hm.Weeks, week)
			week = nil
		}
	}

	return hm
}

func levelFor(st models.DayStats) models.HeatmapLevel {
	switch {
	case st.TotalHours == 0 || st.Percent == 0:
		return models.HeatmapEmpty
	case st.Percent < constants.HeatmapLevelOneBelow:
		return models.HeatmapLevel1
	case st.Percent < constants.HeatmapLevelTwoBelow:
		return models.HeatmapLevel2
	}
	return models.HeatmapLevel3
}

func daysSinceMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// AvailableYears lists the current year and every year with tracked data,
// newest first.
func (s *Store) AvailableYears() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]bool)
	if d, err := clock.ParseDate(s.todayKey); err == nil {
		seen[d.Year()] = true
	}
	for date := range s.state.DailyProgress {
		if d, err := clock.ParseDate(date); err == nil {
			seen[d.Year()] = true
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
