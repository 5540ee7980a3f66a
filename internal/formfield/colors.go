package formfield

import "github.com/alexisbeaulieu97/formfield/internal/theme"

// Colors holds the colour of every form-field element.
type Colors struct {
	Title           theme.Color
	ClearButton     theme.Color
	Required        theme.Color
	Helper          theme.Color
	SecondaryHelper theme.Color
}

// LegacyColors is the first colour schema, without a clear-button role.
//
// Deprecated: use Colors.
type LegacyColors struct {
	Title    theme.Color
	Helper   theme.Color
	Asterisk theme.Color
	Info     theme.Color
}

// DeriveColors resolves the element colours for a theme and feedback state.
// Only the helper colour depends on the feedback state.
func DeriveColors(th theme.Theme, state FeedbackState) Colors {
	common := th.Colors.Base.OnSurface.WithOpacity(th.Dims.Dim1)

	helper := common
	if state == FeedbackError {
		helper = th.Colors.Feedback.Error
	}

	return Colors{
		Title:           th.Colors.Base.OnSurface,
		ClearButton:     th.Colors.Feedback.OnNeutralContainer,
		Required:        common,
		Helper:          helper,
		SecondaryHelper: common,
	}
}

// DeriveLegacyColors resolves colours in the legacy schema.
//
// Deprecated: use DeriveColors.
func DeriveLegacyColors(th theme.Theme, state FeedbackState) LegacyColors {
	return DeriveColors(th, state).Legacy()
}

// Legacy converts the colours to the legacy schema.
//
// Deprecated: use Colors directly.
func (c Colors) Legacy() LegacyColors {
	return LegacyColors{
		Title:    c.Title,
		Helper:   c.Helper,
		Asterisk: c.Required,
		Info:     c.SecondaryHelper,
	}
}
