// Package textutil formats free text for terminal help output.
package textutil

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap splits text into lines of at most width columns, breaking on whitespace. Runs of
// whitespace collapse to a single space and words longer than width are kept whole.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}
	wrapped := wordwrap.WrapString(strings.Join(words, " "), uint(width))
	return strings.Split(wrapped, "\n")
}

// Columns renders name/description rows as an indented two-column table. Descriptions are wrapped
// to fit within total columns, and continuation lines align under the description column.
func Columns(rows [][2]string, total int) string {
	maxLen := 0
	for _, r := range rows {
		maxLen = max(maxLen, len(r[0]))
	}
	nameWidth := maxLen + 4
	wrapWidth := total - nameWidth

	var b strings.Builder
	for _, r := range rows {
		lines := Wrap(r[1], wrapWidth)
		if len(lines) == 0 {
			b.WriteString("  " + r[0] + "\n")
			continue
		}
		padding := strings.Repeat(" ", maxLen-len(r[0])+4)
		b.WriteString("  " + r[0] + padding + lines[0] + "\n")

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			b.WriteString(indentPadding + line + "\n")
		}
	}
	return b.String()
}
