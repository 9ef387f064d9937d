package blocks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/utils"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(22)

	subjectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Strikethrough(true)

	skipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

// Model renders one day's schedule blocks with a selection cursor.
type Model struct {
	viewport viewport.Model
	stats    models.DayStats
	cursor   int
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.stats.Schedule) == 0 {
		return "Rest day. Nothing is scheduled."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetStats replaces the day being shown. The cursor is kept when the day
// still has that many blocks.
func (m *Model) SetStats(stats models.DayStats) {
	if stats.DateKey != m.stats.DateKey || m.cursor >= len(stats.Schedule) {
		m.cursor = 0
	}
	m.stats = stats
	m.Render()
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		m.Render()
	}
}

func (m *Model) MoveDown() {
	if m.cursor < len(m.stats.Schedule)-1 {
		m.cursor++
		m.Render()
	}
}

func (m *Model) Render() {
	var b strings.Builder
	for i := range m.stats.Schedule {
		block := m.stats.EffectiveBlock(i)

		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}

		box := "[ ]"
		subject := subjectStyle.Render(block.Subject)
		var extra string
		switch reason, skipped := m.stats.DayData.SkippedReasons[i]; {
		case m.stats.DayData.IsCompleted(i):
			box = "[x]"
			subject = doneStyle.Render(block.Subject)
		case skipped:
			box = "[-]"
			extra = " " + skipStyle.Render("skipped: "+reason)
		}

		fmt.Fprintf(&b, "%s%s %s %s%s\n",
			marker,
			box,
			timeStyle.Render(utils.FormatTimeRange(block.Start, block.End)),
			subject,
			extra,
		)
	}
	m.viewport.SetContent(b.String())
}
