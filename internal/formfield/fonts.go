package formfield

import "github.com/alexisbeaulieu97/formfield/internal/theme"

// Fonts holds the typography of every form-field element.
type Fonts struct {
	Title           theme.Font
	ClearButton     theme.Font
	Required        theme.Font
	Helper          theme.Font
	SecondaryHelper theme.Font
}

// DeriveFonts resolves the element fonts. Fonts never depend on feedback state.
func DeriveFonts(th theme.Theme) Fonts {
	caption := th.Typography.Caption
	return Fonts{
		Title:           th.Typography.Body2,
		ClearButton:     th.Typography.Body2,
		Required:        caption,
		Helper:          caption,
		SecondaryHelper: caption,
	}
}
