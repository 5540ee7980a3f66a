package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "default", theme.Name)
	assert.Equal(t, "#111827", theme.Colors.Base.OnSurface.Base.Light)
	assert.Equal(t, 1.0, theme.Colors.Base.OnSurface.Opacity)
	assert.Equal(t, 1, theme.SpacingValue(SpacingSizeSmall))
	assert.Equal(t, 0.72, theme.Dims.Dim1)
	assert.True(t, theme.Typography.Body2.Bold, "body2 should be bold")
	assert.False(t, theme.Typography.Caption.Bold)
}

func TestDarkTheme(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.NotEqual(t, light.Colors.Base.Surface, dark.Colors.Base.Surface, "dark theme should invert surface")
	assert.Equal(t, light.Typography, dark.Typography)
}

func TestNamed(t *testing.T) {
	for _, name := range Names() {
		theme, ok := Named(name)
		require.True(t, ok, name)
		assert.Equal(t, name, theme.Name)
	}

	_, ok := Named("solarized")
	assert.False(t, ok)
}

func TestNormalizeFillsMissingTokens(t *testing.T) {
	theme := Theme{
		Colors: Colors{Base: BaseColors{OnSurface: Color{Base: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}}}},
	}.Normalize()

	assert.Equal(t, 1.0, theme.Colors.Base.OnSurface.Opacity)
	assert.Equal(t, 0.0, theme.Colors.Feedback.Error.Opacity, "absent tokens stay empty")
	assert.Equal(t, defaultDims(), theme.Dims)
	assert.Equal(t, 2, theme.SpacingValue(SpacingSizeLarge))
}

func TestSpacingValueOutOfRange(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, theme.SpacingValue(SpacingSizeMedium), theme.SpacingValue(SpacingSize(42)))
	assert.Equal(t, theme.SpacingValue(SpacingSizeMedium), theme.SpacingValue(SpacingSize(-1)))
}

func TestColorWithOpacity(t *testing.T) {
	base := NewColor("#000000", "#ffffff")

	dimmed := base.WithOpacity(0.5)
	assert.Equal(t, 0.5, dimmed.Opacity)
	assert.Equal(t, 1.0, base.Opacity, "original token must not change")
	assert.Equal(t, 1.0, base.WithOpacity(3).Opacity)
	assert.Equal(t, 0.0, base.WithOpacity(-1).Opacity)
}

func TestColorBlend(t *testing.T) {
	backdrop := NewColor("#ffffff", "#000000")

	tests := []struct {
		name  string
		color Color
		want  lipgloss.AdaptiveColor
	}{
		{
			name:  "opaque colour is untouched",
			color: NewColor("#123456", "#654321"),
			want:  lipgloss.AdaptiveColor{Light: "#123456", Dark: "#654321"},
		},
		{
			name:  "half opacity mixes with backdrop",
			color: NewColor("#000000", "#ffffff").WithOpacity(0.5),
			want:  lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"},
		},
		{
			name:  "transparent colour shows the backdrop",
			color: NewColor("#000000", "#ffffff").WithOpacity(0),
			want:  lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"},
		},
		{
			name:  "ansi colours fall back to base",
			color: NewColor("205", "39").WithOpacity(0.5),
			want:  lipgloss.AdaptiveColor{Light: "205", Dark: "39"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.Blend(backdrop))
		})
	}
}

func TestFontStyle(t *testing.T) {
	style := Font{Name: "body2", Bold: true, Underline: true}.Style()
	assert.True(t, style.GetBold())
	assert.True(t, style.GetUnderline())
	assert.False(t, style.GetItalic())
}
