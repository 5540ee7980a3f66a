package config

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formfield/internal/formfield"
	"github.com/alexisbeaulieu97/formfield/internal/logger"
	"github.com/alexisbeaulieu97/formfield/internal/ports"
	"github.com/alexisbeaulieu97/formfield/internal/theme"
)

func TestBuildThemeAppliesOverrides(t *testing.T) {
	th, err := BuildTheme(ThemeConfig{
		Base:      "dark",
		OnSurface: "#000000",
		Error:     "#ff0000",
		Dim1:      floatPtr(0.5),
	})
	require.NoError(t, err)

	assert.Equal(t, "dark", th.Name)
	assert.Equal(t, theme.NewColor("#000000", "#000000"), th.Colors.Base.OnSurface)
	assert.Equal(t, theme.NewColor("#ff0000", "#ff0000"), th.Colors.Feedback.Error)
	assert.Equal(t, theme.DarkTheme().Colors.Base.Surface, th.Colors.Base.Surface)
	assert.Equal(t, 0.5, th.Dims.Dim1)
	assert.Equal(t, theme.DarkTheme().Dims.Dim2, th.Dims.Dim2)
}

func TestBuildThemeDefaults(t *testing.T) {
	th, err := BuildTheme(ThemeConfig{})
	require.NoError(t, err)
	assert.Equal(t, theme.DefaultTheme(), th)

	_, err = BuildTheme(ThemeConfig{Base: "neon"})
	require.Error(t, err)
}

func TestFieldOptions(t *testing.T) {
	field := Field{
		ID:       "email",
		Title:    formfield.String("Email"),
		Required: true,
		Feedback: formfield.FeedbackError,
		Limit:    formfield.Int(10),
		Value:    formfield.String("abcd"),
	}

	opts := FieldOptions(context.Background(), field, Strings{Required: "obligatoire"}, nil)
	state := formfield.New(theme.DefaultTheme(), opts)

	assert.Equal(t, formfield.String("4/10"), state.SecondaryHelper())
	assert.Equal(t, formfield.String("Email, obligatoire"), state.AccessibilityLabel())
	assert.Equal(t, formfield.FeedbackError, state.FeedbackState())
	assert.Nil(t, opts.Logger)
}

func TestFieldOptionsWithoutLimitHidesCounter(t *testing.T) {
	opts := FieldOptions(context.Background(), Field{ID: "a", Value: formfield.String("abc")}, Strings{}, nil)
	assert.Nil(t, opts.CounterLength)
	assert.Nil(t, opts.CounterLimit)
	assert.Equal(t, formfield.DefaultRequiredSuffix, opts.RequiredSuffix)
}

func TestFieldOptionsLogsWithRunContext(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "render-1")
	state := formfield.New(theme.DefaultTheme(), FieldOptions(ctx, Field{ID: "email"}, Strings{}, log))
	state.SetHelper(formfield.String("hint"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "form field updated", entry["message"])
	assert.Equal(t, "render-1", entry["correlation_id"])
	assert.Equal(t, "email", entry["field_id"])
}

func TestStringsWithDefaults(t *testing.T) {
	assert.Equal(t, Strings{Required: "required", Clear: "clear"}, Strings{}.WithDefaults())
	assert.Equal(t, Strings{Required: "requis", Clear: "effacer"}, Strings{Required: "requis", Clear: "effacer"}.WithDefaults())
}
