package formfield

// Accessibility identifiers tag the field elements for UI automation.
const (
	IdentifierField                  = "formfield"
	IdentifierTitle                  = "formfield-title"
	IdentifierClearButton            = "formfield-clear-button"
	IdentifierHelperImage            = "formfield-helper-image"
	IdentifierHelperMessage          = "formfield-helper-message"
	IdentifierSecondaryHelperMessage = "formfield-secondary-helper-message"

	// Deprecated: use IdentifierTitle.
	IdentifierLabel = IdentifierTitle
)

// DeriveAccessibilityLabel picks the label read by assistive technologies.
//
// A custom label always wins over the title. For required fields the
// localized suffix is appended to the chosen value; a required field with
// neither title nor custom label has no label.
func DeriveAccessibilityLabel(title, custom *string, isRequired bool, requiredSuffix string) *string {
	chosen := custom
	if chosen == nil {
		chosen = title
	}
	if chosen == nil {
		return nil
	}

	label := *chosen
	if isRequired {
		label += ", " + requiredSuffix
	}
	return &label
}
