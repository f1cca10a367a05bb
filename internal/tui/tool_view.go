package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/paydev-web/dmlabs-client/models"
)

type toolViewModel struct {
	tool    models.ToolDescriptor
	url     string
	loading bool
	spinner spinner.Model
	errMsg  string
	status  string
}

func newToolViewModel(tool models.ToolDescriptor) toolViewModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return toolViewModel{tool: tool, spinner: s, loading: true}
}

func (m toolViewModel) View() string {
	var b strings.Builder

	if m.tool.Description != "" {
		b.WriteString(m.tool.Description)
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Resolving the launch link...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	default:
		b.WriteString("Open this link in your browser:\n\n")
		b.WriteString("  ")
		b.WriteString(m.url)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	title := strings.TrimSpace(m.tool.Icon + " " + m.tool.Name)
	return renderPage(strings.ToUpper(title), strings.TrimRight(b.String(), "\n"), "c: copy link │ r: retry │ esc: back")
}
