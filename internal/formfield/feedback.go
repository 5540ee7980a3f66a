package formfield

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FeedbackState classifies the field as neutral or in error.
type FeedbackState int

const (
	FeedbackDefault FeedbackState = iota
	FeedbackError
)

// AllFeedbackStates returns every feedback state in declaration order.
func AllFeedbackStates() []FeedbackState {
	return []FeedbackState{FeedbackDefault, FeedbackError}
}

func (s FeedbackState) String() string {
	switch s {
	case FeedbackDefault:
		return "default"
	case FeedbackError:
		return "error"
	default:
		return fmt.Sprintf("FeedbackState(%d)", int(s))
	}
}

// ParseFeedbackState converts a textual state. An empty string is the default state.
func ParseFeedbackState(value string) (FeedbackState, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "default":
		return FeedbackDefault, nil
	case "error":
		return FeedbackError, nil
	default:
		return FeedbackDefault, fmt.Errorf("unknown feedback state %q", value)
	}
}

// UnmarshalYAML decodes a feedback state from its textual form.
func (s *FeedbackState) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseFeedbackState(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the feedback state as text.
func (s FeedbackState) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
