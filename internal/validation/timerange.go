package validation

import (
	"fmt"
	"sort"

	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/utils"
)

// ParseClock converts HH:MM to minutes after midnight.
func ParseClock(s string) (int, error) {
	m, err := utils.ParseTimeToMinutes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return m, nil
}

// Overlaps reports whether [s1,e1) and [s2,e2) intersect. Ranges that only
// touch at an endpoint do not overlap.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// ValidateCatalog checks every weekday's blocks for malformed times,
// empty ranges and overlaps.
func ValidateCatalog(days map[string][]models.ScheduleBlock) []string {
	var errs []string

	names := make([]string, 0, len(days))
	for name := range days {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		type span struct{ idx, start, end int }
		var spans []span

		for i, b := range days[name] {
			s, err := ParseClock(b.Start)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s block %d: %v", name, i, err))
				continue
			}
			e, err := ParseClock(b.End)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s block %d: %v", name, i, err))
				continue
			}
			if s >= e {
				errs = append(errs, fmt.Sprintf("%s block %d: start %s is not before end %s", name, i, b.Start, b.End))
				continue
			}
			if b.Subject == "" {
				errs = append(errs, fmt.Sprintf("%s block %d: subject is empty", name, i))
			}
			spans = append(spans, span{i, s, e})
		}

		for i := 0; i < len(spans); i++ {
			for j := i + 1; j < len(spans); j++ {
				a, b := spans[i], spans[j]
				if Overlaps(a.start, a.end, b.start, b.end) {
					errs = append(errs, fmt.Sprintf("%s: block %d overlaps block %d", name, a.idx, b.idx))
				}
			}
		}
	}

	return errs
}
