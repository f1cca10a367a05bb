package tui

import (
	"github.com/paydev-web/dmlabs-client/models"
)

// authDoneMsg finishes the login flow with the persisted session.
type authDoneMsg struct {
	session models.UserSession
}

// authFailedMsg reports a failed login or signup attempt.
type authFailedMsg struct {
	err error
}

// resetSentMsg carries the backend's reset-password confirmation.
type resetSentMsg struct {
	message string
	err     error
}

// dashboardLoadedMsg delivers the catalog and progress for rendering.
type dashboardLoadedMsg struct {
	catalog *models.Catalog
	record  models.ProgressRecord
	err     error
}

// toolOpenedMsg delivers the result of a tool open: the resolved launch URL
// and the updated progress. toolID identifies which open produced it so
// results for a tool the user already backed out of are discarded.
type toolOpenedMsg struct {
	toolID  string
	url     string
	record  models.ProgressRecord
	err     error
	markErr error
}

// logoutDoneMsg reports the session deletion.
type logoutDoneMsg struct {
	err error
}

// introDismissedMsg reports persisting the cleared first-time flag.
type introDismissedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
