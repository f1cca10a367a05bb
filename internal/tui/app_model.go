// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paydev-web/dmlabs-client/internal/service"
	"github.com/paydev-web/dmlabs-client/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenSignup
	screenResetPassword
	screenDashboard
	screenTool
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	mode          appMode
	currentScreen screen

	welcome   welcomeModel
	login     loginModel
	signup    signupModel
	reset     resetPasswordModel
	dashboard dashboardModel
	tool      toolViewModel

	session *models.UserSession
	catalog *models.Catalog
	record  models.ProgressRecord

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showIntro     bool
	intro         introModel
	logout        bool
	resultSession *models.UserSession
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		signup:        newSignupModel(),
		reset:         newResetPasswordModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, session *models.UserSession) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.session = session
	m.currentScreen = screenDashboard
	m.dashboard = newDashboardModel()
	if session != nil {
		m.dashboard.userName = session.Name
		m.dashboard.status = session.Status
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadDashboard())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showIntro {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showIntro = false
				m.record.FirstTime = false
				return m, m.cmdMarkIntroSeen()
			}
			return m, nil
		}
	case authDoneMsg:
		session := msg.session
		m.resultSession = &session
		return m, tea.Quit
	case authFailedMsg:
		m.setSubmitting(false)
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case resetSentMsg:
		m.reset.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.reset.sent = msg.message
		if m.reset.sent == "" {
			m.reset.sent = "Reset instructions sent. Check your inbox."
		}
		return m, nil
	case dashboardLoadedMsg:
		return m.applyDashboardLoad(msg)
	case toolOpenedMsg:
		return m.applyToolOpened(msg)
	case logoutDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case introDismissedMsg:
		// persisting the flag failed at worst; the overlay stays dismissed
		return m, nil
	case copiedMsg:
		if m.currentScreen == screenTool {
			m.tool.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.tool.status = ""
		m.dashboard.message = ""
		return m, nil
	case spinner.TickMsg:
		return m.updateSpinners(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenSignup:
		return m.updateSignup(msg)
	case screenResetPassword:
		return m.updateResetPassword(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenTool:
		return m.updateTool(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenSignup:
		body = m.signup.View()
	case screenResetPassword:
		body = m.reset.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenTool:
		body = m.tool.View()
	}

	if m.showIntro {
		body += "\n\n" + m.intro.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.signup.submitting = v
	m.reset.submitting = v
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.currentScreen == screenDashboard && m.dashboard.loading {
		var cmd tea.Cmd
		m.dashboard.spinner, cmd = m.dashboard.spinner.Update(msg)
		return m, cmd
	}
	if m.currentScreen == screenTool && m.tool.loading {
		var cmd tea.Cmd
		m.tool.spinner, cmd = m.tool.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ── login flow screens ───────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.welcome.idx {
		case 0:
			m.currentScreen = screenLogin
		case 1:
			m.currentScreen = screenSignup
		case 2:
			m.currentScreen = screenResetPassword
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit) && keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit) && keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.signup = focusNextSignup(m.signup)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signup = focusPrevSignup(m.signup)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.signup.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.signup.inputs[0].Value())
			email := strings.TrimSpace(m.signup.inputs[1].Value())
			phone := strings.TrimSpace(m.signup.inputs[2].Value())
			pass := m.signup.inputs[3].Value()
			repeat := m.signup.inputs[4].Value()
			if name == "" || email == "" || pass == "" {
				m.showErrorf("Name, email and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.signup.submitting = true
			return m, m.cmdSignup(name, email, pass, phone)
		}
	}

	var cmd tea.Cmd
	m.signup.inputs[m.signup.focus], cmd = m.signup.inputs[m.signup.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateResetPassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit) && keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.reset.sent = ""
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.reset.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.reset.input.Value())
			if email == "" {
				m.showErrorf("Email is required")
				return m, nil
			}
			m.reset.submitting = true
			return m, m.cmdResetPassword(email)
		}
	}

	var cmd tea.Cmd
	m.reset.input, cmd = m.reset.input.Update(msg)
	return m, cmd
}

// ── dashboard & tool view ────────────────────────────────────────────────────

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.dashboard.loading {
		if key.Matches(keyMsg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.dashboard.loadErr != nil {
		switch {
		case key.Matches(keyMsg, keys.retry):
			m.dashboard.loading = true
			m.dashboard.loadErr = nil
			return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadDashboard())
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(m.dashboard.entries)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		tool, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		if tool.Locked {
			m.dashboard.message = m.lockedMessage()
			return m, cmdClearStatus()
		}
		m.tool = newToolViewModel(tool.Tool)
		m.currentScreen = screenTool
		return m, tea.Batch(m.tool.spinner.Tick, m.cmdOpenTool(tool.Tool.ID))
	case key.Matches(keyMsg, keys.refresh):
		m.dashboard.loading = true
		return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadDashboard())
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateTool(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		// any in-flight resolution result for this tool will be discarded
		m.currentScreen = screenDashboard
		m.refreshDashboardViews()
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.tool.url == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.tool.url)
	case key.Matches(keyMsg, keys.retry):
		if m.tool.loading {
			return m, nil
		}
		if m.tool.url != "" {
			// the link is already resolved; retry only clears the error
			m.tool.errMsg = ""
			return m, nil
		}
		m.tool.loading = true
		m.tool.errMsg = ""
		return m, tea.Batch(m.tool.spinner.Tick, m.cmdOpenTool(m.tool.tool.ID))
	case key.Matches(keyMsg, keys.quit) && keyMsg.String() == "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) applyDashboardLoad(msg dashboardLoadedMsg) (tea.Model, tea.Cmd) {
	m.dashboard.loading = false
	if msg.err != nil {
		m.dashboard.loadErr = msg.err
		return m, nil
	}

	m.catalog = msg.catalog
	m.record = msg.record
	m.dashboard.loadErr = nil
	m.refreshDashboardViews()

	if m.record.FirstTime {
		m.showIntro = true
	}
	return m, nil
}

func (m appModel) applyToolOpened(msg toolOpenedMsg) (tea.Model, tea.Cmd) {
	// the user may have backed out or opened another tool meanwhile
	if m.currentScreen != screenTool || m.tool.tool.ID != msg.toolID {
		return m, nil
	}

	m.tool.loading = false
	if msg.err != nil {
		m.tool.errMsg = humanizeError(msg.err)
		return m, nil
	}

	m.tool.url = msg.url
	m.record = msg.record
	if msg.markErr != nil {
		m.tool.status = "Progress could not be saved"
	}
	return m, nil
}

// refreshDashboardViews recomputes the stage sections from the data already
// in hand; no backend round-trip.
func (m *appModel) refreshDashboardViews() {
	now := time.Now()
	m.dashboard.setViews(service.BuildStageViews(m.catalog, m.session, &m.record, now))
	m.dashboard.notice = service.ExpiryNoticeFor(m.session, now)
	if m.session != nil {
		m.dashboard.userName = m.session.Name
		m.dashboard.status = service.ResolveStatus(m.session, now)
	}
	m.dashboard.next = service.NextRecommended(m.catalog, &m.record)
}

func (m appModel) lockedMessage() string {
	if service.ResolveStatus(m.session, time.Now()) == models.StatusExpired {
		return "Your premium access has expired. Renew to open this tool."
	}
	return "This is a premium tool. Upgrade to open it."
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, email, password)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdSignup(name, email, password, phone string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Signup(ctx, name, email, password, phone)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdResetPassword(email string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		message, err := auth.ResetPassword(ctx, email)
		return resetSentMsg{message: message, err: err}
	}
}

func (m appModel) cmdLoadDashboard() tea.Cmd {
	ctx := m.ctx
	catalogSvc := m.services.CatalogService
	progressSvc := m.services.ProgressService
	return func() tea.Msg {
		cat, err := catalogSvc.LoadCatalog(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		record, err := progressSvc.GetProgress(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{catalog: cat, record: record}
	}
}

func (m appModel) cmdOpenTool(toolID string) tea.Cmd {
	ctx := m.ctx
	catalogSvc := m.services.CatalogService
	progressSvc := m.services.ProgressService
	cat := m.catalog
	record := m.record
	return func() tea.Msg {
		url, err := catalogSvc.ResolveLaunchURL(ctx, cat, toolID)
		if err != nil {
			return toolOpenedMsg{toolID: toolID, err: err}
		}

		updated, markErr := progressSvc.MarkToolCompleted(ctx, cat, toolID)
		if markErr != nil {
			// the link still works; keep the previous record
			return toolOpenedMsg{toolID: toolID, url: url, record: record, markErr: markErr}
		}
		return toolOpenedMsg{toolID: toolID, url: url, record: updated}
	}
}

func (m appModel) cmdMarkIntroSeen() tea.Cmd {
	ctx := m.ctx
	progressSvc := m.services.ProgressService
	return func() tea.Msg {
		return introDismissedMsg{err: progressSvc.MarkIntroSeen(ctx)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextSignup(m signupModel) signupModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevSignup(m signupModel) signupModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
