package formfield

import (
	"strconv"

	"github.com/rivo/uniseg"
)

// FormatCounter renders "length/limit". Without a limit the counter is
// hidden and nil is returned; a missing length counts as zero. Lengths above
// the limit are shown as is.
func FormatCounter(length, limit *int) *string {
	if limit == nil {
		return nil
	}

	count := 0
	if length != nil {
		count = *length
	}

	text := strconv.Itoa(count) + "/" + strconv.Itoa(*limit)
	return &text
}

// CounterLength counts the user-perceived characters of text, so that an
// emoji or a letter with combining accents counts once.
func CounterLength(text *string) *int {
	if text == nil {
		return nil
	}
	n := uniseg.GraphemeClusterCount(*text)
	return &n
}
