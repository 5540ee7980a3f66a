// Package theme defines the design tokens (colours, typography, spacing and
// opacity dims) consumed read-only by themed components.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
	SpacingSizeDoubleExtraLarge
)

const spacingSizeCount = int(SpacingSizeDoubleExtraLarge) + 1

// SpacingScale maps every SpacingSize to a cell count.
type SpacingScale [spacingSizeCount]int

// BaseColors are the surface colours every component sits on.
type BaseColors struct {
	Surface   Color
	OnSurface Color
}

// FeedbackColors are the colours used to signal state to the user.
type FeedbackColors struct {
	Error              Color
	OnError            Color
	NeutralContainer   Color
	OnNeutralContainer Color
}

// Colors groups the semantic colour slots of a theme.
type Colors struct {
	Base     BaseColors
	Feedback FeedbackColors
}

// Typography contains the semantic typography tokens.
type Typography struct {
	Headline         Font
	Body1            Font
	Body2            Font
	Caption          Font
	CaptionHighlight Font
}

// Layout holds layout tokens.
type Layout struct {
	Spacing SpacingScale
}

// Dims are opacity multipliers, from the least to the most muted.
type Dims struct {
	Dim1 float64
	Dim2 float64
	Dim3 float64
	Dim4 float64
	Dim5 float64
}

// Theme represents an immutable design-token source.
// Themes should be created once and reused. All modification operations
// return new theme instances rather than mutating the original.
type Theme struct {
	Name       string
	Colors     Colors
	Typography Typography
	Layout     Layout
	Dims       Dims
}

// Normalize returns a new theme with all fields properly initialized.
// This ensures that partially-specified themes have sensible defaults.
func (t Theme) Normalize() Theme {
	if spacingScaleIsZero(t.Layout.Spacing) {
		t.Layout.Spacing = defaultSpacingScale()
	}
	if t.Dims == (Dims{}) {
		t.Dims = defaultDims()
	}

	t.Colors.Base.Surface = t.Colors.Base.Surface.normalize()
	t.Colors.Base.OnSurface = t.Colors.Base.OnSurface.normalize()
	t.Colors.Feedback.Error = t.Colors.Feedback.Error.normalize()
	t.Colors.Feedback.OnError = t.Colors.Feedback.OnError.normalize()
	t.Colors.Feedback.NeutralContainer = t.Colors.Feedback.NeutralContainer.normalize()
	t.Colors.Feedback.OnNeutralContainer = t.Colors.Feedback.OnNeutralContainer.normalize()
	return t
}

// SpacingValue returns the spacing for the given size.
func (t Theme) SpacingValue(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(t.Layout.Spacing) {
		index = int(SpacingSizeMedium)
	}
	return t.Layout.Spacing[index]
}

func spacingScaleIsZero(scale SpacingScale) bool {
	for _, value := range scale {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingScale() SpacingScale {
	return SpacingScale{
		SpacingSizeNone:             0,
		SpacingSizeExtraSmall:       0,
		SpacingSizeSmall:            1,
		SpacingSizeMedium:           1,
		SpacingSizeLarge:            2,
		SpacingSizeExtraLarge:       3,
		SpacingSizeDoubleExtraLarge: 4,
	}
}

func defaultDims() Dims {
	return Dims{Dim1: 0.72, Dim2: 0.56, Dim3: 0.40, Dim4: 0.16, Dim5: 0.08}
}

func defaultTypography() Typography {
	return Typography{
		Headline:         Font{Name: "headline", Bold: true, Underline: true},
		Body1:            Font{Name: "body1"},
		Body2:            Font{Name: "body2", Bold: true},
		Caption:          Font{Name: "caption"},
		CaptionHighlight: Font{Name: "caption-highlight", Bold: true},
	}
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	theme := Theme{
		Name: "default",
		Colors: Colors{
			Base: BaseColors{
				Surface:   NewColor("#ffffff", "#111827"),
				OnSurface: NewColor("#111827", "#f9fafb"),
			},
			Feedback: FeedbackColors{
				Error:              NewColor("#dc2626", "#f87171"),
				OnError:            NewColor("#ffffff", "#450a0a"),
				NeutralContainer:   NewColor("#e2e8f0", "#334155"),
				OnNeutralContainer: NewColor("#0f172a", "#e2e8f0"),
			},
		},
		Typography: defaultTypography(),
		Layout:     Layout{Spacing: defaultSpacingScale()},
		Dims:       defaultDims(),
	}

	return theme.Normalize()
}

// DarkTheme returns a dark theme variant
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	theme.Colors.Base = BaseColors{
		Surface:   NewColor("#0b1120", "#0b1120"),
		OnSurface: NewColor("#e5e7eb", "#e5e7eb"),
	}
	theme.Colors.Feedback.Error = NewColor("#f87171", "#f87171")
	theme.Colors.Feedback.NeutralContainer = NewColor("#1f2937", "#1f2937")
	theme.Colors.Feedback.OnNeutralContainer = NewColor("#cbd5e1", "#cbd5e1")

	return theme.Normalize()
}

// LightTheme returns a light theme variant
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "light"
	theme.Colors.Base = BaseColors{
		Surface:   NewColor("#ffffff", "#ffffff"),
		OnSurface: NewColor("#111827", "#111827"),
	}
	return theme.Normalize()
}

// Named returns a built-in theme by name.
func Named(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	default:
		return Theme{}, false
	}
}

// Names lists the built-in theme names in cycling order.
func Names() []string {
	return []string{"default", "light", "dark"}
}

// Font is a typography token.
type Font struct {
	Name      string
	Bold      bool
	Italic    bool
	Faint     bool
	Underline bool
}

// Style returns the lipgloss style carrying this font's attributes.
func (f Font) Style() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(f.Bold).
		Italic(f.Italic).
		Faint(f.Faint).
		Underline(f.Underline)
}
