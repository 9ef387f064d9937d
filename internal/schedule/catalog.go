package schedule

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/validation"
)

//go:embed default.yaml
var defaultTimetable []byte

// Weekdays lists day names in display order, Monday first.
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// Catalog is the fixed weekly timetable. It is read-only once built.
type Catalog struct {
	days map[string][]models.ScheduleBlock
}

// New builds a catalog from blocks keyed by weekday name. The input is
// copied.
func New(days map[string][]models.ScheduleBlock) *Catalog {
	c := &Catalog{days: make(map[string][]models.ScheduleBlock, len(days))}
	for name, blocks := range days {
		c.days[name] = append([]models.ScheduleBlock(nil), blocks...)
	}
	return c
}

// Default returns the built-in timetable.
func Default() (*Catalog, error) {
	c, err := Parse(defaultTimetable)
	if err != nil {
		return nil, fmt.Errorf("built-in timetable: %w", err)
	}
	return c, nil
}

// Load reads a YAML timetable from path, or the built-in one when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schedule file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML mapping of weekday name to blocks and validates it.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string][]models.ScheduleBlock
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse timetable: %w", err)
	}

	days := make(map[string][]models.ScheduleBlock, len(raw))
	for name, blocks := range raw {
		canonical, ok := canonicalDay(name)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		if _, dup := days[canonical]; dup {
			return nil, fmt.Errorf("weekday %s listed twice", canonical)
		}
		days[canonical] = blocks
	}

	c := New(days)
	if errs := c.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid timetable: %s", strings.Join(errs, "; "))
	}
	return c, nil
}

func canonicalDay(name string) (string, bool) {
	for _, d := range Weekdays {
		if strings.EqualFold(strings.TrimSpace(name), d) {
			return d, true
		}
	}
	return "", false
}

// ScheduleFor returns a copy of dayName's blocks. Unknown days have none.
func (c *Catalog) ScheduleFor(dayName string) []models.ScheduleBlock {
	blocks := c.days[dayName]
	out := make([]models.ScheduleBlock, len(blocks))
	copy(out, blocks)
	return out
}

// Validate reports malformed times, empty ranges and overlapping blocks.
func (c *Catalog) Validate() []string {
	return validation.ValidateCatalog(c.days)
}

// WeeklyHours is the planned study time across the whole week.
func (c *Catalog) WeeklyHours() float64 {
	var total float64
	for _, blocks := range c.days {
		for _, b := range blocks {
			total += hours(b.End) - hours(b.Start)
		}
	}
	return total
}

func hours(hhmm string) float64 {
	m, err := validation.ParseClock(hhmm)
	if err != nil {
		return 0
	}
	return float64(m) / 60
}
