package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formfield/internal/formfield"
	"github.com/alexisbeaulieu97/formfield/internal/theme"
)

// Field is everything needed to draw one form field.
type Field struct {
	Snapshot formfield.Snapshot
	// Control is the already rendered wrapped control, e.g. a text input.
	Control    string
	ShowClear  bool
	ClearTitle string
	HelperIcon string
	// Width is the total width of the field. Zero lets the content decide.
	Width             int
	ShowAccessibility bool
}

// RenderField draws a field as a title row, a framed control and a helper row.
// Rows are only emitted for outputs that are present.
func RenderField(f Field) string {
	snap := f.Snapshot
	rows := make([]string, 0, 4)

	if snap.Title != nil {
		style := lipgloss.NewStyle().MarginBottom(snap.Spacing)
		if f.Width > 0 {
			style = style.Width(f.Width)
		}
		rows = append(rows, style.Render(snap.Title.Render(snap.Backdrop)))
	}

	rows = append(rows, renderControl(f))

	if helper := renderHelperRow(f); helper != "" {
		rows = append(rows, helper)
	}

	if f.ShowAccessibility {
		label := "(none)"
		if snap.AccessibilityLabel != nil {
			label = *snap.AccessibilityLabel
		}
		style := a11yStyle
		if f.Width > 0 {
			style = style.Width(f.Width)
		}
		rows = append(rows, style.Render("a11y: "+label))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderControl(f Field) string {
	snap := f.Snapshot

	border := snap.Colors.Title
	if snap.FeedbackState == formfield.FeedbackError {
		border = snap.Colors.Helper
	}
	style := controlStyle.BorderForeground(border.Blend(snap.Backdrop))
	if f.Width > 2 {
		style = style.Width(f.Width - 2)
	}

	content := f.Control
	if f.ShowClear {
		title := f.ClearTitle
		if title == "" {
			title = formfield.DefaultClearTitle
		}
		clear := textStyle(snap.Colors.ClearButton, snap.Fonts.ClearButton, snap.Backdrop).Render("[" + title + "]")
		content = content + strings.Repeat(" ", gapWidth(snap.Spacing)) + clear
	}

	return style.Render(content)
}

func renderHelperRow(f Field) string {
	snap := f.Snapshot

	var left, right string
	if snap.Helper != nil {
		text := *snap.Helper
		if f.HelperIcon != "" {
			text = f.HelperIcon + " " + text
		}
		left = textStyle(snap.Colors.Helper, snap.Fonts.Helper, snap.Backdrop).Render(text)
	}
	if snap.SecondaryHelper != nil {
		right = textStyle(snap.Colors.SecondaryHelper, snap.Fonts.SecondaryHelper, snap.Backdrop).Render(*snap.SecondaryHelper)
	}

	switch {
	case right == "":
		return left
	case left == "" && f.Width == 0:
		return right
	}

	gap := gapWidth(snap.Spacing)
	if f.Width > 0 {
		gap = max(gap, f.Width-lipgloss.Width(left)-lipgloss.Width(right))
	}
	return left + strings.Repeat(" ", gap) + right
}

func textStyle(color theme.Color, font theme.Font, backdrop theme.Color) lipgloss.Style {
	return font.Style().Foreground(color.Blend(backdrop))
}

// gapWidth is the horizontal gap between neighbours, at least one cell.
func gapWidth(spacing int) int {
	return max(spacing, 1)
}
