package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type signupModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newSignupModel() signupModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40

	phoneInput := textinput.New()
	phoneInput.Placeholder = "phone (optional)"
	phoneInput.CharLimit = 30
	phoneInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	repeatInput := textinput.New()
	repeatInput.Placeholder = "repeat password"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return signupModel{inputs: []textinput.Model{nameInput, emailInput, phoneInput, passwordInput, repeatInput}}
}

func (m signupModel) View() string {
	labels := []string{"Name    ", "Email   ", "Phone   ", "Password", "Repeat  "}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
