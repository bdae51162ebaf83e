package tui

import "legal-qa-bot/internal/domain"

// loginResultMsg lands after the login POST and session write settle.
type loginResultMsg struct {
	displayEmail string
	err          error
}

// answerDoneMsg lands after a send (or retry) settles.
type answerDoneMsg struct {
	err error
}

// profileSavedMsg lands after a profile edit is applied.
type profileSavedMsg struct {
	user domain.User
	err  error
}

// upgradeSentMsg lands after a status-upgrade request is submitted.
type upgradeSentMsg struct {
	requested domain.UserStatus
	err       error
}

// loggedOutMsg tells the root model to route back to the login view.
type loggedOutMsg struct{}
