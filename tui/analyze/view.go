package analyze

import (
	"strings"

	"emoterm/tui/common"
)

// View renders the input source on top and the output sink below it.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("emoterm"))
	b.WriteString(common.TaglineStyle.Render("emotion detection from your terminal"))
	b.WriteString("\n\n")

	b.WriteString(common.PromptStyle.Render(" Statement"))
	b.WriteString("\n ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(" " + common.ErrorStyle.Render("Error: "+common.SanitizeForTerminal(m.errMsg)))
		b.WriteString("\n")
	case m.result != "":
		b.WriteString(common.ResultStyle.Width(74).Render(common.SanitizeForTerminal(m.result)))
		b.WriteString("\n")
	}

	if m.inflight > 0 {
		b.WriteString("\n " + m.spinner.View() + "analyzing...")
	}

	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render(
		" enter: analyze • ctrl+e: $EDITOR • ctrl+l: clear • esc: quit"))

	return b.String()
}
