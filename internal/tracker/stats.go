package tracker

import (
	"sort"
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/utils"
)

// GetDayStats derives planned and completed hours for date. Every other
// statistic is built from it.
func (s *Store) GetDayStats(date string) models.DayStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dayStats(s.catalog, s.state, date, s.todayKey)
}

func dayStats(catalog Catalog, state models.TrackerState, date, today string) models.DayStats {
	dayName := clock.WeekdayNameOf(date)
	var schedule []models.ScheduleBlock
	if dayName != "" {
		schedule = catalog.ScheduleFor(dayName)
	}

	rec, ok := state.DailyProgress[date]
	if ok {
		rec = rec.Clone()
	} else {
		rec = models.NewDayRecord()
	}

	var total, completed float64
	for i, block := range schedule {
		eff := rec.Effective(i, block)
		d := utils.DurationHours(eff.Start, eff.End)
		total += d
		if rec.IsCompleted(i) {
			completed += d
		}
	}

	var percent float64
	if total > 0 {
		percent = completed / total * 100
	}

	return models.DayStats{
		DateKey:        date,
		DayName:        dayName,
		Schedule:       schedule,
		DayData:        rec,
		TotalHours:     total,
		CompletedHours: completed,
		Percent:        percent,
		IsToday:        date == today,
	}
}

// Streaks counts runs of valid study days from the first tracked date
// through today. Rest days neither extend nor break a run.
func (s *Store) Streaks() models.Streaks {
	s.mu.Lock()
	defer s.mu.Unlock()
	return streaks(s.catalog, s.state, s.todayKey)
}

func streaks(catalog Catalog, state models.TrackerState, today string) models.Streaks {
	var first string
	for _, date := range state.TrackedDates() {
		if clock.ValidDateKey(date) {
			first = date
			break
		}
	}
	if first == "" {
		return models.Streaks{}
	}

	var run, best int
	for date := first; date <= today; {
		st := dayStats(catalog, state, date, today)
		if st.TotalHours > 0 {
			if st.Percent >= constants.StreakThresholdPercent {
				run++
				if run > best {
					best = run
				}
			} else {
				run = 0
			}
		}

		next, err := clock.AddDays(date, 1)
		if err != nil {
			break
		}
		date = next
	}

	return models.Streaks{Current: run, Best: best}
}

// NormalizeSubject strips a parenthetical or colon qualifier from a
// subject: "DSA (Arrays)" and "DSA: Arrays" both become "DSA".
func NormalizeSubject(subject string) string {
	if i := strings.Index(subject, "("); i >= 0 {
		subject = subject[:i]
	}
	if i := strings.Index(subject, ":"); i >= 0 {
		subject = subject[:i]
	}
	return strings.TrimSpace(subject)
}

// SubjectHours totals completed hours per normalized subject across every
// tracked date. Completed indices outside the day's schedule are ignored.
func (s *Store) SubjectHours() map[string]float64 {
	return s.ProgressSummary().SubjectHours
}

// ProgressSummary aggregates subject hours, LeetCode days and total study
// hours over all tracked dates.
func (s *Store) ProgressSummary() models.ProgressSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := models.ProgressSummary{SubjectHours: make(map[string]float64)}
	for _, date := range s.state.TrackedDates() {
		st := dayStats(s.catalog, s.state, date, s.todayKey)
		if st.DayData.LeetCode {
			summary.TotalLeetCode++
		}
		for idx := range st.Schedule {
			if !st.DayData.IsCompleted(idx) {
				continue
			}
			eff := st.EffectiveBlock(idx)
			d := utils.DurationHours(eff.Start, eff.End)
			summary.TotalStudyHours += d
			if subject := NormalizeSubject(eff.Subject); subject != "" {
				summary.SubjectHours[subject] += d
			}
		}
	}
	return summary
}

// RankedSubjects returns subject names ordered by hours, most first, with
// ties broken alphabetically.
func RankedSubjects(hours map[string]float64) []string {
	names := make([]string, 0, len(hours))
	for name := range hours {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if hours[names[i]] != hours[names[j]] {
			return hours[names[i]] > hours[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
