package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/formfield/internal/formfield"
)

// Update handles Bubbletea messages and forwards the resulting input
// changes to the field state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		m.changes.reset()
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyCtrlE:
			m.state.SetFeedbackState(nextFeedbackState(m.state.FeedbackState()))
			return m, nil
		case tea.KeyCtrlR:
			m.state.SetRequired(!m.state.IsRequired())
			return m, nil
		case tea.KeyCtrlT:
			m.themeIndex = (m.themeIndex + 1) % len(m.themes)
			m.state.SetTheme(m.themes[m.themeIndex])
			return m, nil
		case tea.KeyCtrlL:
			m.input.SetValue("")
			m.syncCounter()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.syncCounter()
	}
	return m, cmd
}

func nextFeedbackState(current formfield.FeedbackState) formfield.FeedbackState {
	states := formfield.AllFeedbackStates()
	for i, state := range states {
		if state == current {
			return states[(i+1)%len(states)]
		}
	}
	return formfield.FeedbackDefault
}
