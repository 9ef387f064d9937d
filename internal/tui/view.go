package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateWeakAreas:
		content = docStyle.Render(m.weakAreas.View())
	case StateInput:
		content = docStyle.Render(m.input.View())
	}

	parts := []string{m.viewTabs()}
	if errs := m.store.CorruptionErrors(); len(errs) > 0 {
		parts = append(parts, dangerStyle.Render(fmt.Sprintf("⚠ Stored data failed validation (%d problem(s)); read-only", len(errs))))
	}
	parts = append(parts, content)
	if m.status != "" {
		parts = append(parts, warningStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == StateInput {
		active = m.previousState
	}
	var tabs []string
	for i, title := range []string{"Today", "Weak Areas"} {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	header := headerStyle.Render(fmt.Sprintf("%s, %s", m.stats.DayName, m.stats.DateKey))
	summary := mutedStyle.Render(fmt.Sprintf("%.1fh of %.1fh  ·  streak %d (best %d)",
		m.stats.CompletedHours, m.stats.TotalHours, m.streaks.Current, m.streaks.Best))

	leetcode := "LeetCode: not yet"
	if m.stats.DayData.LeetCode {
		leetcode = "LeetCode: done"
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.progress.ViewAs(m.stats.Percent/100),
		summary,
		"",
		m.blocks.View(),
		mutedStyle.Render(leetcode),
	))
}
