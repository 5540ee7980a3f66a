package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a colour token: an adaptive base colour with an opacity in [0,1].
type Color struct {
	Base    lipgloss.AdaptiveColor
	Opacity float64
}

// NewColor creates a fully opaque colour token.
func NewColor(light, dark string) Color {
	return Color{
		Base:    lipgloss.AdaptiveColor{Light: light, Dark: dark},
		Opacity: 1,
	}
}

// WithOpacity returns a copy of the token with the given opacity.
func (c Color) WithOpacity(opacity float64) Color {
	c.Opacity = clampUnit(opacity)
	return c
}

// IsZero reports whether the token has no base colour.
func (c Color) IsZero() bool {
	return c.Base.Light == "" && c.Base.Dark == ""
}

// Blend resolves the token against a backdrop. Opaque tokens are returned
// unchanged; translucent ones are alpha-blended in RGB space. Colours that
// are not hex values (ANSI indexes) cannot be blended and fall back to the base.
func (c Color) Blend(backdrop Color) lipgloss.AdaptiveColor {
	if c.Opacity >= 1 {
		return c.Base
	}
	return lipgloss.AdaptiveColor{
		Light: blendHex(c.Base.Light, backdrop.Base.Light, c.Opacity),
		Dark:  blendHex(c.Base.Dark, backdrop.Base.Dark, c.Opacity),
	}
}

func (c Color) normalize() Color {
	if !c.IsZero() && c.Opacity == 0 {
		c.Opacity = 1
	}
	return c
}

func blendHex(fg, bg string, opacity float64) string {
	front, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	back, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	return back.BlendRgb(front, opacity).Clamped().Hex()
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
