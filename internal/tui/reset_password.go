package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type resetPasswordModel struct {
	input      textinput.Model
	submitting bool
	sent       string
}

func newResetPasswordModel() resetPasswordModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40
	emailInput.Focus()

	return resetPasswordModel{input: emailInput}
}

func (m resetPasswordModel) View() string {
	var b strings.Builder
	b.WriteString("Email [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	switch {
	case m.sent != "":
		b.WriteString("\n")
		b.WriteString(m.sent)
		b.WriteString("\n")
	case m.submitting:
		b.WriteString("\n[Sending...]\n")
	default:
		b.WriteString("\n[Send reset instructions]\n")
	}

	return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: submit")
}
