package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Karthik0484/Progress-Tracker/internal/constants"
	"github.com/Karthik0484/Progress-Tracker/internal/models"
	"github.com/Karthik0484/Progress-Tracker/internal/tracker"
	"github.com/Karthik0484/Progress-Tracker/internal/tui/components/blocks"
	"github.com/Karthik0484/Progress-Tracker/internal/tui/components/weakareas"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateWeakAreas
	StateInput
)

const tabCount = 2

type inputPurpose int

const (
	inputSkipReason inputPurpose = iota
	inputWeakArea
)

// tickMsg drives the periodic day-boundary check.
type tickMsg time.Time

type Model struct {
	store         *tracker.Store
	interval      time.Duration
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	progress      progress.Model
	blocks        blocks.Model
	weakAreas     weakareas.Model
	input         textinput.Model
	inputFor      inputPurpose
	stats         models.DayStats
	streaks       models.Streaks
	status        string
	quitting      bool
	width         int
	height        int
}

// NewModel builds the live view over store. interval is how often the day
// boundary is re-checked; zero uses constants.RolloverInterval.
func NewModel(store *tracker.Store, interval time.Duration) Model {
	if interval <= 0 {
		interval = constants.RolloverInterval
	}

	ti := textinput.New()
	ti.CharLimit = 200

	m := Model{
		store:     store,
		interval:  interval,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient()),
		blocks:    blocks.New(0, 0),
		weakAreas: weakareas.New(nil, 0, 0),
		input:     ti,
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateInput:
		return []key.Binding{m.keys.Submit, m.keys.Cancel}
	case StateToday:
		return []key.Binding{m.keys.Tab, m.keys.Toggle, m.keys.Skip, m.keys.LeetCode, m.keys.Quit, m.keys.Help}
	}
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh re-reads everything shown from the store.
func (m *Model) refresh() {
	today := m.store.TodayKey()
	m.stats = m.store.GetDayStats(today)
	m.streaks = m.store.Streaks()
	m.blocks.SetStats(m.stats)
	m.weakAreas.SetAreas(m.store.State().WeakAreas)
}
