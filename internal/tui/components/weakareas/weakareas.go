package weakareas

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type AddMsg struct{}

type RemoveMsg struct {
	Index int
}

type Item struct {
	Index int
	Area  string
}

func (i Item) Title() string       { return i.Area }
func (i Item) Description() string { return "" }
func (i Item) FilterValue() string { return i.Area }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(areas []string, width, height int) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(toItems(areas), delegate, width, height)
	l.Title = "Weak Areas"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(areas []string) []list.Item {
	items := make([]list.Item, len(areas))
	for i, a := range areas {
		items[i] = Item{Index: i, Area: a}
	}
	return items
}

func (m *Model) SetAreas(areas []string) {
	m.list.SetItems(toItems(areas))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemoveMsg{Index: i.Index} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No weak areas yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
