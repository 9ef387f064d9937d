package tracker

import (
	"encoding/json"
	"strconv"

	"github.com/Karthik0484/Progress-Tracker/internal/models"
)

// salvage keeps every well-typed value of a generic document and drops the
// rest. Its result is only ever shown read-only.
func salvage(doc any) models.TrackerState {
	state := models.NewTrackerState()
	root, ok := doc.(map[string]any)
	if !ok {
		return state
	}

	if progress, ok := root["dailyProgress"].(map[string]any); ok {
		for date, v := range progress {
			day, ok := v.(map[string]any)
			if !ok {
				continue
			}
			state.DailyProgress[date] = salvageDay(day)
		}
	}

	if areas, ok := root["weakAreas"].([]any); ok {
		for _, a := range areas {
			if s, ok := a.(string); ok {
				state.WeakAreas = append(state.WeakAreas, s)
			}
		}
	}

	if reviews, ok := root["reviews"].(map[string]any); ok {
		for week, payload := range reviews {
			if raw, err := json.Marshal(payload); err == nil {
				state.Reviews[week] = raw
			}
		}
	}

	return state
}

func salvageDay(day map[string]any) models.DayRecord {
	rec := models.NewDayRecord()

	if completed, ok := day["completedBlocks"].([]any); ok {
		seen := make(map[int]bool)
		for _, v := range completed {
			n, ok := v.(json.Number)
			if !ok {
				continue
			}
			idx, ok := models.ParseBlockIndex(n)
			if !ok || seen[idx] {
				continue
			}
			seen[idx] = true
			rec.CompletedBlocks = insertSorted(rec.CompletedBlocks, idx)
		}
	}

	salvageStrings(day["skippedReasons"], rec.SkippedReasons)
	salvageStrings(day["overriddenSubjects"], rec.OverriddenSubjects)

	if times, ok := day["overriddenTimes"].(map[string]any); ok {
		for k, v := range times {
			idx, err := strconv.Atoi(k)
			if err != nil || idx < 0 {
				continue
			}
			tr, ok := v.(map[string]any)
			if !ok {
				continue
			}
			start, _ := tr["start"].(string)
			end, _ := tr["end"].(string)
			rec.OverriddenTimes[idx] = models.TimeRange{Start: start, End: end}
		}
	}

	rec.Notes, _ = day["notes"].(string)
	rec.LeetCode, _ = day["leetcode"].(bool)
	return rec
}

func salvageStrings(v any, dst map[int]string) {
	m, ok := v.(map[string]any)
	if !ok {
		return
	}
	for k, val := range m {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 {
			continue
		}
		if s, ok := val.(string); ok {
			dst[idx] = s
		}
	}
}
