package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const previewHelp = "ctrl+e feedback • ctrl+r required • ctrl+t theme • ctrl+l clear • esc quit"

// View renders the previewed field with a header and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.state.Snapshot()
	header := headerStyle.Render(fmt.Sprintf("%s • %s • %s", m.id, m.themeName(), snap.FeedbackState))

	field := RenderField(Field{
		Snapshot:          snap,
		Control:           m.input.View(),
		ShowClear:         m.clearButton && m.input.Value() != "",
		ClearTitle:        m.clearTitle,
		HelperIcon:        m.helperIcon,
		Width:             m.width,
		ShowAccessibility: true,
	})

	status := "updated: -"
	if len(m.changes.fields) > 0 {
		names := make([]string, len(m.changes.fields))
		for i, field := range m.changes.fields {
			names[i] = field.String()
		}
		status = "updated: " + strings.Join(names, ", ")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		field,
		statusStyle.Render(status),
		helpStyle.Render(previewHelp),
	)
}
