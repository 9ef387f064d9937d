package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/Karthik0484/Progress-Tracker/internal/models"
)

const (
	fieldDailyProgress = "dailyProgress"
	fieldWeakAreas     = "weakAreas"
	fieldReviews       = "reviews"

	fieldCompleted = "completedBlocks"
	fieldSkipped   = "skippedReasons"
	fieldSubjects  = "overriddenSubjects"
	fieldTimes     = "overriddenTimes"
)

var requiredFields = []string{fieldDailyProgress, fieldWeakAreas, fieldReviews}

// DecodeDocument parses raw JSON into the generic tree ValidateDocument
// expects. Numbers are kept as json.Number so raw values survive.
func DecodeDocument(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ValidateState runs ValidateDocument over the JSON form of state.
func ValidateState(state *models.TrackerState) []string {
	if state == nil {
		return ValidateDocument(nil)
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return []string{fmt.Sprintf("Data could not be encoded: %v", err)}
	}
	doc, err := DecodeDocument(raw)
	if err != nil {
		return []string{fmt.Sprintf("Data could not be decoded: %v", err)}
	}
	return ValidateDocument(doc)
}

// ValidateDocument reports structural corruption in a decoded state
// document. An empty result means the document is valid. It never modifies
// doc.
func ValidateDocument(doc any) []string {
	var errs []string

	if isAbsent(doc) {
		return append(errs, "Data is missing or null.")
	}

	root, _ := doc.(map[string]any)
	for _, field := range requiredFields {
		if _, ok := root[field]; !ok {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	progress, _ := root[fieldDailyProgress].(map[string]any)
	dates := make([]string, 0, len(progress))
	for date := range progress {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		day, ok := progress[date].(map[string]any)
		if !ok {
			continue
		}
		errs = append(errs, validateDay(date, day)...)
	}

	return errs
}

func validateDay(date string, day map[string]any) []string {
	var errs []string

	completed, _ := day[fieldCompleted].([]any)
	skipped, _ := day[fieldSkipped].(map[string]any)

	for _, idx := range completed {
		if _, ok := skipped[indexKey(idx)]; ok {
			errs = append(errs, fmt.Sprintf("Data Conflict at %s: Block %s is marked as both completed and skipped.", date, raw(idx)))
		}
	}

	for _, idx := range completed {
		if !validIndexValue(idx) {
			errs = append(errs, fmt.Sprintf("Invalid index in %s at %s: %s", fieldCompleted, date, raw(idx)))
		}
	}

	for _, field := range []string{fieldSkipped, fieldSubjects, fieldTimes} {
		entries, _ := day[field].(map[string]any)
		for _, key := range sortedKeys(entries) {
			if _, ok := parseIndex(key); !ok {
				errs = append(errs, fmt.Sprintf("Invalid index in %s at %s: %s", field, date, key))
			}
		}
	}

	times, _ := day[fieldTimes].(map[string]any)
	for _, key := range sortedKeys(times) {
		if _, ok := parseIndex(key); !ok {
			continue
		}
		if msg := checkTimeRange(times[key]); msg != "" {
			errs = append(errs, fmt.Sprintf("Invalid time override at %s: block %s %s", date, key, msg))
		}
	}

	return errs
}

func checkTimeRange(v any) string {
	tr, ok := v.(map[string]any)
	if !ok {
		return fmt.Sprintf("is not a time range: %s", raw(v))
	}
	start, _ := tr["start"].(string)
	end, _ := tr["end"].(string)
	s, err := ParseClock(start)
	if err != nil {
		return fmt.Sprintf("has malformed start %q", start)
	}
	e, err := ParseClock(end)
	if err != nil {
		return fmt.Sprintf("has malformed end %q", end)
	}
	if s >= e {
		return fmt.Sprintf("starts at %s but ends at %s", start, end)
	}
	return ""
}

// isAbsent matches the values a JSON document can use for "no data".
func isAbsent(doc any) bool {
	switch v := doc.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	}
	return false
}

func validIndexValue(v any) bool {
	n, ok := v.(json.Number)
	if !ok {
		return false
	}
	_, ok = models.ParseBlockIndex(n)
	return ok
}

func parseIndex(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// indexKey renders a completedBlocks entry the way it would appear as a
// map key.
func indexKey(v any) string {
	if n, ok := v.(json.Number); ok {
		if f, err := n.Float64(); err == nil && f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
		return n.String()
	}
	return raw(v)
}

func raw(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case json.Number:
		return x.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// sortedKeys orders integer keys numerically ahead of any others.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aok := parseIndex(keys[i])
		b, bok := parseIndex(keys[j])
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		}
		return keys[i] < keys[j]
	})
	return keys
}
