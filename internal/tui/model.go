package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/formfield/internal/formfield"
	"github.com/alexisbeaulieu97/formfield/internal/ports"
	"github.com/alexisbeaulieu97/formfield/internal/theme"
)

// PreviewOptions configures the interactive preview of one field.
type PreviewOptions struct {
	ID    string
	State *formfield.State
	// Themes are cycled with ctrl+t. The first one should be the theme the
	// state was created with; an empty list keeps the state's theme.
	Themes      []theme.Theme
	Value       string
	Placeholder string
	Limit       *int
	ClearButton bool
	ClearTitle  string
	HelperIcon  string
}

// changeLog collects the outputs recomputed by the last key press.
type changeLog struct {
	fields []formfield.Field
}

func (c *changeLog) reset() {
	c.fields = nil
}

// Model is the Bubbletea model previewing a single form field. The wrapped
// control is a text input whose length drives the counter.
type Model struct {
	id          string
	state       *formfield.State
	input       textinput.Model
	themes      []theme.Theme
	themeIndex  int
	limit       *int
	clearButton bool
	clearTitle  string
	helperIcon  string
	width       int
	changes     *changeLog
	sub         ports.Subscription
	quitting    bool
}

// NewModel constructs a preview model. The state must not be nil.
func NewModel(opts PreviewOptions) Model {
	input := textinput.New()
	input.Placeholder = opts.Placeholder
	input.SetValue(opts.Value)
	input.Focus()

	themes := opts.Themes
	if len(themes) == 0 {
		themes = []theme.Theme{opts.State.Theme()}
	}

	changes := &changeLog{}
	subs := make(subscriptions, 0, len(formfield.AllFields()))
	for _, field := range formfield.AllFields() {
		subs = append(subs, opts.State.Subscribe(field, func(c formfield.Change) {
			changes.fields = append(changes.fields, c.Field)
		}))
	}

	return Model{
		id:          opts.ID,
		state:       opts.State,
		input:       input,
		themes:      themes,
		limit:       opts.Limit,
		clearButton: opts.ClearButton,
		clearTitle:  opts.ClearTitle,
		helperIcon:  opts.HelperIcon,
		changes:     changes,
		sub:         subs,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the current content of the wrapped control.
func (m Model) Value() string {
	return m.input.Value()
}

// State returns the previewed field state.
func (m Model) State() *formfield.State {
	return m.state
}

// LastChanges lists the outputs recomputed by the most recent key press.
func (m Model) LastChanges() []formfield.Field {
	return append([]formfield.Field(nil), m.changes.fields...)
}

// Quitting reports whether the user asked to leave the preview.
func (m Model) Quitting() bool {
	return m.quitting
}

// Close stops listening to the field state.
func (m Model) Close() {
	if m.sub != nil {
		m.sub.Unsubscribe()
	}
}

func (m Model) themeName() string {
	return m.themes[m.themeIndex].Name
}

func (m *Model) syncCounter() {
	if m.limit == nil {
		return
	}
	value := m.input.Value()
	m.state.SetCounter(&value, m.limit)
}

type subscriptions []ports.Subscription

func (s subscriptions) Unsubscribe() {
	for _, sub := range s {
		sub.Unsubscribe()
	}
}
