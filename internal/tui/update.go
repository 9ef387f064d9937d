package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Karthik0484/Progress-Tracker/internal/tracker"
	"github.com/Karthik0484/Progress-Tracker/internal/tui/components/weakareas"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-4, 60)
		m.blocks.SetSize(msg.Width-4, msg.Height-10)
		m.weakAreas.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tickMsg:
		if ev, ok := m.store.CheckRollover(); ok {
			m.status = fmt.Sprintf("New day: %s", ev.Current)
			if len(ev.CorruptionErrors) > 0 {
				m.status = fmt.Sprintf("New day: %s (data is read-only, %d problem(s))", ev.Current, len(ev.CorruptionErrors))
			}
		}
		m.refresh()
		return m, tick(m.interval)

	case weakareas.AddMsg:
		return m.startInput(inputWeakArea, "New weak area: ")

	case weakareas.RemoveMsg:
		m.apply(m.store.RemoveWeakArea(msg.Index))
		return m, nil

	case tea.KeyMsg:
		if m.state == StateInput {
			return m.updateInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}

		if m.state == StateToday {
			return m.updateToday(msg)
		}
	}

	if m.state == StateWeakAreas {
		var cmd tea.Cmd
		m.weakAreas, cmd = m.weakAreas.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	today := m.store.TodayKey()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.blocks.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.blocks.MoveDown()
	case key.Matches(msg, m.keys.Toggle):
		if len(m.stats.Schedule) > 0 {
			m.apply(m.store.ToggleBlock(today, m.blocks.Cursor()))
		}
	case key.Matches(msg, m.keys.LeetCode):
		m.apply(m.store.ToggleLeetCode(today))
	case key.Matches(msg, m.keys.Skip):
		if len(m.stats.Schedule) > 0 {
			return m.startInput(inputSkipReason, "Skip reason: ")
		}
	}
	return m, nil
}

func (m Model) startInput(purpose inputPurpose, prompt string) (tea.Model, tea.Cmd) {
	m.previousState = m.state
	m.state = StateInput
	m.inputFor = purpose
	m.input.Prompt = prompt
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.input.Blur()
		m.state = m.previousState
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		value := m.input.Value()
		m.input.Blur()
		m.state = m.previousState
		switch m.inputFor {
		case inputSkipReason:
			m.apply(m.store.UpdateSkipReason(m.store.TodayKey(), m.blocks.Cursor(), value))
		case inputWeakArea:
			m.apply(m.store.AddWeakArea(value))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply reports the outcome of a store mutation and refreshes the view.
func (m *Model) apply(err error) {
	var conflict *tracker.TimeConflictError
	switch {
	case err == nil:
		m.status = ""
	case tracker.IsNoop(err):
		m.status = ""
	case errors.Is(err, tracker.ErrReadOnly):
		m.status = "Data is corrupted and read-only. Restore a snapshot with 'tracker snapshot restore'."
	case errors.As(err, &conflict):
		m.status = "Rejected: " + conflict.Error()
	default:
		m.status = err.Error()
	}
	if saveErr := m.store.LastSaveError(); saveErr != nil {
		m.status = "Not saved: " + saveErr.Error()
	}
	m.refresh()
}
