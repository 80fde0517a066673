package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SanitizeForTerminal removes escape sequences and control bytes from
// text before rendering. The server response is displayed as-is in
// content, but a response carrying raw terminal escapes must not be
// allowed to repaint or retitle the terminal.
func SanitizeForTerminal(s string) string {
	s = ansi.Strip(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
