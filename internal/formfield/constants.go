package formfield

const (
	// DefaultClearTitle is the clear-button title when none is configured.
	DefaultClearTitle = "clear"
	// DefaultRequiredSuffix is appended to the accessibility label of required fields.
	DefaultRequiredSuffix = "required"
	// IconSize is the edge, in cells, of the helper and clear-button icons.
	IconSize = 1
)

// String returns a pointer to v, for optional string inputs.
func String(v string) *string {
	return &v
}

// Int returns a pointer to v, for optional integer inputs.
func Int(v int) *int {
	return &v
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	return String(*v)
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}
