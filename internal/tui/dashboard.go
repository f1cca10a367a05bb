// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/paydev-web/dmlabs-client/models"
)

// toolEntry addresses one selectable tool inside the rendered stage views.
type toolEntry struct {
	stageIdx int
	toolIdx  int
}

type dashboardModel struct {
	views   []models.StageView
	entries []toolEntry
	idx     int
	next    *models.ToolDescriptor
	notice  models.ExpiryNotice

	userName string
	status   models.Status

	loading bool
	loadErr error
	spinner spinner.Model
	message string
}

func newDashboardModel() dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{spinner: s, loading: true}
}

// setViews replaces the rendered sections and rebuilds the flat selection
// list, clamping the cursor.
func (m *dashboardModel) setViews(views []models.StageView) {
	m.views = views
	m.entries = m.entries[:0]
	for si, view := range views {
		for ti := range view.Tools {
			m.entries = append(m.entries, toolEntry{stageIdx: si, toolIdx: ti})
		}
	}
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) current() (models.ToolView, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.ToolView{}, false
	}
	entry := m.entries[m.idx]
	return m.views[entry.stageIdx].Tools[entry.toolIdx], true
}

func (m dashboardModel) View() string {
	if m.loading {
		return renderPage("DMLABS DASHBOARD", m.spinner.View()+" Loading the tool catalog...", "")
	}

	if m.loadErr != nil {
		body := errorStyle.Render(humanizeError(m.loadErr))
		return renderPage("DMLABS DASHBOARD", body, "r: retry │ q: quit")
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  ·  %s\n", m.userName, m.status))
	if banner := m.noticeBanner(); banner != "" {
		b.WriteString(bannerStyle.Render(banner))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.journeyTracker())
	b.WriteString("\n\n")

	if m.next != nil {
		b.WriteString(fmt.Sprintf("Up next: %s %s (stage %d)\n\n", m.next.Icon, m.next.Name, m.next.Stage))
	}

	cursor := 0
	for si, view := range m.views {
		title := view.Meta.Title
		if title == "" {
			title = fmt.Sprintf("Stage %d", view.Number)
		}
		b.WriteString(titleStyle.Render(fmt.Sprintf("Stage %d · %s", view.Number, title)))
		b.WriteString(fmt.Sprintf("  %d/%d (%.0f%%)\n", view.Progress.Completed, view.Progress.Total, view.Progress.Percentage))
		if view.Meta.Goal != "" {
			b.WriteString(helpStyle.Render("  " + view.Meta.Goal))
			b.WriteString("\n")
		}

		for _, tool := range view.Tools {
			prefix := "  "
			if cursor == m.idx {
				prefix = "> "
			}
			cursor++

			mark := "[ ]"
			if tool.Completed {
				mark = "[x]"
			}

			line := fmt.Sprintf("%s%s %s %s", prefix, mark, tool.Tool.Icon, fitText(tool.Tool.Name, 40))
			if tool.Locked {
				line = lockedStyle.Render(line + "  (premium)")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		if view.ShowUpsell {
			b.WriteString(helpStyle.Render("  Unlock this stage with Premium"))
			b.WriteString("\n")
		}
		if si < len(m.views)-1 {
			b.WriteString("\n")
		}
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.message)
		b.WriteString("\n")
	}

	return renderPage("DMLABS DASHBOARD", strings.TrimRight(b.String(), "\n"), "enter: open │ r: refresh │ l: log out │ q: quit")
}

// journeyTracker renders the six stage circles with the completed and
// current markers.
func (m dashboardModel) journeyTracker() string {
	done := make(map[int]bool, len(m.views))
	currentStage := 1
	for _, view := range m.views {
		if view.Progress.Done() {
			done[view.Number] = true
		}
	}
	if m.next != nil {
		currentStage = m.next.Stage
	}

	parts := make([]string, 0, models.StageCount)
	for n := 1; n <= models.StageCount; n++ {
		switch {
		case done[n]:
			parts = append(parts, fmt.Sprintf("(%d)✔", n))
		case n == currentStage:
			parts = append(parts, fmt.Sprintf("(%d)●", n))
		default:
			parts = append(parts, fmt.Sprintf("(%d) ", n))
		}
	}
	return strings.Join(parts, "──")
}

func (m dashboardModel) noticeBanner() string {
	switch {
	case m.notice.Expired:
		return "Your premium access has expired. Renew to keep using premium tools."
	case m.notice.ExpiringSoon:
		return fmt.Sprintf("Premium expires in %d day(s).", m.notice.DaysLeft)
	default:
		return ""
	}
}
