package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewRendersPreview(t *testing.T) {
	m := newPreview(t, "abcd")

	view := m.View()
	require.Contains(t, view, "email • default • default")
	require.Contains(t, view, "Email")
	require.Contains(t, view, "4/10")
	require.Contains(t, view, "[clear]")
	require.Contains(t, view, "a11y: Email")
	require.Contains(t, view, "updated: -")
	require.Contains(t, view, "esc quit")
}

func TestViewReportsRecomputedOutputs(t *testing.T) {
	m := newPreview(t, "")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	view := updated.(Model).View()

	require.Contains(t, view, "email • default • error")
	require.Contains(t, view, "updated: colors")
	require.NotContains(t, view, "[clear]")
}
