package formfield

import (
	"strings"

	"github.com/alexisbeaulieu97/formfield/internal/theme"
)

// RequiredMarker is appended to the title of required fields.
const RequiredMarker = " *"

// StyledRun is a contiguous span of text with its own colour and font.
type StyledRun struct {
	Text  string
	Color theme.Color
	Font  theme.Font
}

// StyledText is an ordered sequence of runs. A nil StyledText means "no
// text at all", which is different from a text made of empty runs.
type StyledText []StyledRun

// String returns the plain text of all runs.
func (t StyledText) String() string {
	var b strings.Builder
	for _, run := range t {
		b.WriteString(run.Text)
	}
	return b.String()
}

// Runs returns a copy of the runs.
func (t StyledText) Runs() []StyledRun {
	if t == nil {
		return nil
	}
	return append([]StyledRun(nil), t...)
}

// Render styles every run for the terminal, resolving translucent colours
// against the backdrop.
func (t StyledText) Render(backdrop theme.Color) string {
	var b strings.Builder
	for _, run := range t {
		style := run.Font.Style().Foreground(run.Color.Blend(backdrop))
		b.WriteString(style.Render(run.Text))
	}
	return b.String()
}

// FormatTitle builds the styled title. It returns nil when there is no
// title, whatever the required flag.
func FormatTitle(title *string, isRequired bool, colors Colors, fonts Fonts) StyledText {
	if title == nil {
		return nil
	}

	text := StyledText{{Text: *title, Color: colors.Title, Font: fonts.Title}}
	if isRequired {
		text = append(text, StyledRun{Text: RequiredMarker, Color: colors.Required, Font: fonts.Required})
	}
	return text
}
