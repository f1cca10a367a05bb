package tui

import "strings"

// introModel is the one-time framework introduction overlay shown on the
// first dashboard visit.
type introModel struct{}

func (m introModel) View() string {
	var b strings.Builder
	b.WriteString("Welcome to DMLabs!\n\n")
	b.WriteString("The dashboard walks you through creating your own digital\n")
	b.WriteString("product in six stages, from finding an idea to scaling it.\n")
	b.WriteString("Each stage unlocks tools; open them in order and the journey\n")
	b.WriteString("tracker moves forward with you.\n\n")
	b.WriteString("enter to start")
	return overlayBoxStyle.Render(b.String())
}
