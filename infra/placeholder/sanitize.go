package placeholder

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sanitizeText strips terminal escape sequences and control characters from
// remote text. Newlines and tabs survive.
func sanitizeText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
