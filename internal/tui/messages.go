package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-blog/models"
)

// NavigateTo asks [RootModel] to switch to another page. A non-nil Payload
// is delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page once the token request returns.
type LoginResult struct {
	Err      error
	Username string
}

// RegisterResult is produced by the register page once the account request returns.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

type postsLoadedMsg struct {
	posts []models.Post
	err   error
}

type postLoadedMsg struct {
	post models.Post
	err  error
}

type postCreatedMsg struct {
	post models.Post
	err  error
}

type serverVersionMsg struct {
	version string
	err     error
}
