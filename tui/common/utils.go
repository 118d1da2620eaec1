package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ClampLinesToWidth cuts every line of text to at most width cells,
// keeping escape sequences intact.
func ClampLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width)
	}
	return strings.Join(lines, "\n")
}

// LineIndex returns the first line of text whose visible content contains
// marker, or -1.
func LineIndex(text, marker string) int {
	for i, ln := range strings.Split(text, "\n") {
		if strings.Contains(ansi.Strip(ln), marker) {
			return i
		}
	}
	return -1
}
