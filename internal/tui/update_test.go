package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formfield/internal/formfield"
	"github.com/alexisbeaulieu97/formfield/internal/theme"
)

func newPreview(t *testing.T, value string) Model {
	t.Helper()

	state := formfield.New(theme.DefaultTheme(), formfield.Options{
		Title:         formfield.String("Email"),
		CounterLength: formfield.CounterLength(&value),
		CounterLimit:  formfield.Int(10),
	})
	m := NewModel(PreviewOptions{
		ID:          "email",
		State:       state,
		Themes:      []theme.Theme{theme.DefaultTheme(), theme.DarkTheme()},
		Value:       value,
		Limit:       formfield.Int(10),
		ClearButton: true,
	})
	t.Cleanup(m.Close)
	return m
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestUpdateTypingUpdatesCounter(t *testing.T) {
	m := newPreview(t, "")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})

	require.Equal(t, "abc", m.Value())
	require.Equal(t, formfield.String("3/10"), m.State().SecondaryHelper())
	require.Equal(t, []formfield.Field{formfield.FieldSecondaryHelper}, m.LastChanges())
}

func TestUpdateTogglesFeedbackState(t *testing.T) {
	m := newPreview(t, "")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	require.Equal(t, formfield.FeedbackError, m.State().FeedbackState())
	require.Equal(t, []formfield.Field{formfield.FieldColors}, m.LastChanges())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	require.Equal(t, formfield.FeedbackDefault, m.State().FeedbackState())
}

func TestUpdateTogglesRequired(t *testing.T) {
	m := newPreview(t, "")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, "Email *", m.State().Title().String())
	require.Equal(t, []formfield.Field{formfield.FieldTitle, formfield.FieldAccessibilityLabel}, m.LastChanges())
}

func TestUpdateCyclesThemes(t *testing.T) {
	m := newPreview(t, "")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, "dark", m.State().Theme().Name)
	require.Len(t, m.LastChanges(), 5)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, "default", m.State().Theme().Name)
}

func TestUpdateClearsInput(t *testing.T) {
	m := newPreview(t, "hello")
	require.Equal(t, formfield.String("5/10"), m.State().SecondaryHelper())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	require.Empty(t, m.Value())
	require.Equal(t, formfield.String("0/10"), m.State().SecondaryHelper())
}

func TestUpdateQuits(t *testing.T) {
	m := newPreview(t, "")

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.True(t, m.Quitting())
	require.Empty(t, m.View())
}

func TestUpdateTracksWindowWidth(t *testing.T) {
	m := newPreview(t, "")

	m, cmd := send(m, tea.WindowSizeMsg{Width: 50, Height: 10})
	require.Nil(t, cmd)
	require.Equal(t, 50, m.width)
}

func TestCloseStopsTrackingChanges(t *testing.T) {
	m := newPreview(t, "")
	m.Close()

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.True(t, m.State().IsRequired())
	require.Empty(t, m.LastChanges())
}
