// Package formfield derives the presentation of a themed form field.
//
// # Overview
//
// A form field decorates an arbitrary input control (text input, checkbox,
// radio group) with a title, a required marker, helper text, a secondary
// helper (usually a character counter) and an optional clear button. This
// package owns every decision about how those elements look; it never renders.
//
// # Derivations
//
// The building blocks are pure, total functions:
//
//   - DeriveColors: theme + feedback state -> Colors
//   - DeriveFonts: theme -> Fonts
//   - FormatTitle: title + required flag + colours + fonts -> StyledText
//   - DeriveAccessibilityLabel: title + custom label + required flag -> label
//   - FormatCounter: length + limit -> "length/limit"
//
// # State
//
// State is the view-model. It holds the current inputs and re-runs exactly
// the derivations that depend on an input whenever a setter is called:
//
//	field := formfield.New(theme.DefaultTheme(), formfield.Options{
//		Title:      formfield.String("Email"),
//		IsRequired: true,
//	})
//	sub := field.Subscribe(formfield.FieldTitle, func(c formfield.Change) {
//		fmt.Println(c.Snapshot.Title.String())
//	})
//	defer sub.Unsubscribe()
//	field.SetTitle(formfield.String("Work email"))
//
// Listeners run after the setter has finished recomputing, so every Change
// carries a complete, consistent Snapshot. State is not safe for concurrent
// use; callers must keep a single writer.
//
// # Rich text
//
// FormatTitle returns a StyledText: an ordered list of runs, each with its
// own colour and font. String gives the plain representation, Render the
// terminal one. View layers convert the runs to whatever they need.
package formfield
