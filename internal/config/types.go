package config

import (
	"github.com/alexisbeaulieu97/formfield/internal/formfield"
)

// Document is a YAML form document: a theme plus the fields to present.
type Document struct {
	Version string      `yaml:"version" validate:"required,semver"`
	Name    string      `yaml:"name,omitempty" validate:"max=100"`
	Theme   ThemeConfig `yaml:"theme,omitempty"`
	Strings Strings     `yaml:"strings,omitempty"`
	Fields  []Field     `yaml:"fields" validate:"required,min=1,dive"`
}

// ThemeConfig selects a built-in theme and optionally overrides its tokens.
// Colour overrides apply to both the light and dark variants.
type ThemeConfig struct {
	Base               string   `yaml:"base,omitempty" validate:"omitempty,oneof=default light dark"`
	Surface            string   `yaml:"surface,omitempty" validate:"omitempty,rgbhex"`
	OnSurface          string   `yaml:"on_surface,omitempty" validate:"omitempty,rgbhex"`
	Error              string   `yaml:"error,omitempty" validate:"omitempty,rgbhex"`
	OnNeutralContainer string   `yaml:"on_neutral_container,omitempty" validate:"omitempty,rgbhex"`
	Dim1               *float64 `yaml:"dim1,omitempty" validate:"omitempty,dim"`
}

// Strings holds the resolved, localized texts used by fields.
type Strings struct {
	Required string `yaml:"required,omitempty"`
	Clear    string `yaml:"clear,omitempty"`
}

// WithDefaults fills empty strings with the built-in English texts.
func (s Strings) WithDefaults() Strings {
	if s.Required == "" {
		s.Required = formfield.DefaultRequiredSuffix
	}
	if s.Clear == "" {
		s.Clear = formfield.DefaultClearTitle
	}
	return s
}

// Field describes one form field and the content of its control.
type Field struct {
	ID                 string                  `yaml:"id" validate:"required,field_id"`
	Title              *string                 `yaml:"title,omitempty"`
	Helper             *string                 `yaml:"helper,omitempty"`
	Required           bool                    `yaml:"required,omitempty"`
	Feedback           formfield.FeedbackState `yaml:"feedback,omitempty"`
	Limit              *int                    `yaml:"limit,omitempty" validate:"omitempty,min=0"`
	Value              *string                 `yaml:"value,omitempty"`
	Placeholder        string                  `yaml:"placeholder,omitempty"`
	AccessibilityLabel *string                 `yaml:"accessibility_label,omitempty"`
	ClearButton        bool                    `yaml:"clear_button,omitempty"`
	HelperIcon         string                  `yaml:"helper_icon,omitempty" validate:"max=4"`
}

// FieldByID returns the field with the given identifier.
func (d *Document) FieldByID(id string) (Field, bool) {
	if d == nil {
		return Field{}, false
	}
	for _, field := range d.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}
