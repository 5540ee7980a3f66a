package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	formerrors "github.com/alexisbeaulieu97/formfield/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation on a document.
// All problems are reported at once as formerrors.ValidationErrors.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return formerrors.NewValidationError("document", "document is nil", nil)
	}

	var problems formerrors.ValidationErrors

	if err := validatorInstance().Struct(doc); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return formerrors.NewValidationError("document", err.Error(), err)
		}
		for _, fe := range ves {
			problems = append(problems, &formerrors.ValidationError{
				Field:   fieldPath(fe),
				Message: messageFor(fe),
				Err:     fe,
			})
		}
	}

	seen := make(map[string]int, len(doc.Fields))
	for i, field := range doc.Fields {
		if field.ID == "" {
			continue
		}
		if first, ok := seen[field.ID]; ok {
			problems = append(problems, &formerrors.ValidationError{
				Field:   fmt.Sprintf("fields[%d].id", i),
				Message: fmt.Sprintf("duplicates fields[%d].id %q", first, field.ID),
			})
			continue
		}
		seen[field.ID] = i
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

// fieldPath turns "Document.fields[0].id" into "fields[0].id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "semver":
		return "must be a semantic version such as 1.0.0"
	case "field_id":
		return "must contain only lowercase letters, digits, '-' or '_'"
	case "rgbhex":
		return "must be a #rgb or #rrggbb hex colour such as #1f2937"
	case "dim":
		return "must be between 0 and 1"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
