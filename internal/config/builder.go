package config

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/formfield/internal/formfield"
	"github.com/alexisbeaulieu97/formfield/internal/ports"
	"github.com/alexisbeaulieu97/formfield/internal/theme"
)

// BuildTheme resolves the configured base theme and applies the overrides.
func BuildTheme(cfg ThemeConfig) (theme.Theme, error) {
	th, ok := theme.Named(cfg.Base)
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q", cfg.Base)
	}

	override := func(target *theme.Color, hex string) {
		if hex != "" {
			*target = theme.NewColor(hex, hex)
		}
	}
	override(&th.Colors.Base.Surface, cfg.Surface)
	override(&th.Colors.Base.OnSurface, cfg.OnSurface)
	override(&th.Colors.Feedback.Error, cfg.Error)
	override(&th.Colors.Feedback.OnNeutralContainer, cfg.OnNeutralContainer)

	if cfg.Dim1 != nil {
		th.Dims.Dim1 = *cfg.Dim1
	}

	return th.Normalize(), nil
}

// FieldOptions converts a field into the inputs of a formfield.State.
// The counter is only shown when the field declares a limit. ctx is kept
// for the state's log entries.
func FieldOptions(ctx context.Context, field Field, strings Strings, logger ports.Logger) formfield.Options {
	opts := formfield.Options{
		FeedbackState:      field.Feedback,
		Title:              field.Title,
		Helper:             field.Helper,
		IsRequired:         field.Required,
		AccessibilityLabel: field.AccessibilityLabel,
		CounterLimit:       field.Limit,
		RequiredSuffix:     strings.WithDefaults().Required,
		Context:            ctx,
	}
	if field.Limit != nil {
		opts.CounterLength = formfield.CounterLength(field.Value)
	}
	if logger != nil {
		opts.Logger = logger.With("field_id", field.ID)
	}
	return opts
}
