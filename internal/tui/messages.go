package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebelikov/lotus/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// re-dispatched as a message after the switch so the target page can pick up
// context (e.g. a success notice).
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult carries the outcome of the async login command.
type LoginResult struct {
	Err  error
	User models.SessionUser
}

// RegisterResult carries the outcome of the async registration command.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu after a completed registration.
type RegisterSuccessNotice struct {
	Username string
}

// LoginSuccessNotice is shown on the menu after a successful login.
type LoginSuccessNotice struct {
	Username string
}

// cycleDoneMsg carries the outcome of CompleteFocusCycle.
type cycleDoneMsg struct {
	session   models.FocusSession
	newPoints int64
	err       error
}

// serverVersionMsg carries the server's build version for the info window.
type serverVersionMsg struct {
	version string
	err     error
}

// profileLoadedMsg carries the freshly fetched profile.
type profileLoadedMsg struct {
	user models.User
	err  error
}

// profileSavedMsg carries the outcome of a profile update: the persisted
// values of just the columns the update may touch.
type profileSavedMsg struct {
	updated models.UpdatedProfile
	err     error
}

// statsLoadedMsg carries the local focus log aggregates.
type statsLoadedMsg struct {
	stats    models.FocusStats
	sessions []models.FocusSession
	err      error
}

// pointsRefreshedMsg is injected by the background refresh worker whenever a
// new balance arrives from the server.
type pointsRefreshedMsg struct {
	points int64
}

type copiedMsg struct{}

type clearStatusMsg struct{}
