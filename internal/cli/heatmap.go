package cli

import (
	"strconv"
	"strings"

	"github.com/Karthik0484/Progress-Tracker/internal/clock"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
)

type HeatmapCmd struct {
	Year int `help:"Year to show. Defaults to the current year."`
}

func (c *HeatmapCmd) Run(ctx *Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}

	year := c.Year
	if year == 0 {
		today, err := clock.ParseDate(store.TodayKey())
		if err != nil {
			return err
		}
		year = today.Year()
	}

	ctx.printf("%s", renderHeatmap(store.Heatmap(year)))

	var others []string
	for _, y := range store.AvailableYears() {
		if y != year {
			others = append(others, strconv.Itoa(y))
		}
	}
	if len(others) > 0 {
		ctx.printf("\n%s\n", mutedStyle.Render("Other years: "+strings.Join(others, ", ")))
	}
	return nil
}

var weekdayLabels = [7]string{"Mon", "   ", "Wed", "   ", "Fri", "   ", "Sun"}

func renderHeatmap(hm models.Heatmap) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(strconv.Itoa(hm.Year)))
	b.WriteString("\n\n")

	// Month labels sit above their column, two characters per week.
	header := []rune(strings.Repeat(" ", len(hm.Weeks)*2+4))
	for _, label := range hm.MonthLabels {
		pos := 4 + label.Column*2
		for i, r := range label.Name {
			if pos+i < len(header) {
				header[pos+i] = r
			}
		}
	}
	b.WriteString(strings.TrimRight(string(header), " "))
	b.WriteString("\n")

	for row := 0; row < 7; row++ {
		b.WriteString(weekdayLabels[row])
		b.WriteString(" ")
		for _, week := range hm.Weeks {
			b.WriteString(heatCell(week[row]))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Less "))
	for _, level := range []models.HeatmapLevel{models.HeatmapEmpty, models.HeatmapLevel1, models.HeatmapLevel2, models.HeatmapLevel3} {
		b.WriteString(heatCell(models.HeatmapCell{InYear: true, Level: level}))
		b.WriteString(" ")
	}
	b.WriteString(mutedStyle.Render("More"))
	b.WriteString("\n")
	return b.String()
}

func heatCell(c models.HeatmapCell) string {
	if c.Level == models.HeatmapHidden {
		return " "
	}
	glyph := "■"
	if c.Level == models.HeatmapFuture {
		glyph = "·"
	}
	if style, ok := heatStyles[string(c.Level)]; ok {
		return style.Render(glyph)
	}
	return glyph
}
