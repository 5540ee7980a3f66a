package formfield

import "github.com/alexisbeaulieu97/formfield/internal/theme"

// Deriver computes every derived output of a State. The default
// implementation forwards to the package-level derivation functions;
// alternative implementations can decorate it.
type Deriver interface {
	Colors(th theme.Theme, state FeedbackState) Colors
	Fonts(th theme.Theme) Fonts
	Spacing(th theme.Theme) int
	Title(title *string, isRequired bool, colors Colors, fonts Fonts) StyledText
	AccessibilityLabel(title, custom *string, isRequired bool) *string
	Counter(length, limit *int) *string
}

// DefaultDeriver is the standard Deriver.
type DefaultDeriver struct {
	// RequiredSuffix is the resolved, localized word appended to the
	// accessibility label of required fields.
	RequiredSuffix string
}

// NewDeriver creates a DefaultDeriver. An empty suffix falls back to DefaultRequiredSuffix.
func NewDeriver(requiredSuffix string) DefaultDeriver {
	if requiredSuffix == "" {
		requiredSuffix = DefaultRequiredSuffix
	}
	return DefaultDeriver{RequiredSuffix: requiredSuffix}
}

func (d DefaultDeriver) Colors(th theme.Theme, state FeedbackState) Colors {
	return DeriveColors(th, state)
}

func (d DefaultDeriver) Fonts(th theme.Theme) Fonts {
	return DeriveFonts(th)
}

// Spacing is the gap between the title, the control and the helper row.
func (d DefaultDeriver) Spacing(th theme.Theme) int {
	return th.SpacingValue(theme.SpacingSizeSmall)
}

func (d DefaultDeriver) Title(title *string, isRequired bool, colors Colors, fonts Fonts) StyledText {
	return FormatTitle(title, isRequired, colors, fonts)
}

func (d DefaultDeriver) AccessibilityLabel(title, custom *string, isRequired bool) *string {
	return DeriveAccessibilityLabel(title, custom, isRequired, d.RequiredSuffix)
}

func (d DefaultDeriver) Counter(length, limit *int) *string {
	return FormatCounter(length, limit)
}
