package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// ClientAuthService defines the client-side contract for accounts and the
// API token. The credentials of the logged-in user stay in memory only, so
// the token can be renewed without asking again.
type ClientAuthService interface {
	// Register creates a new account on the server. It does not log in.
	Register(ctx context.Context, form models.RegisterForm) (models.User, error)

	// Login exchanges the credentials for an API token. Wrong credentials
	// yield [ErrWrongCredentials].
	Login(ctx context.Context, username, password string) error

	// RefreshToken asks the server for the current token again. The server
	// hands out a new token only when the old one is about to expire.
	// Returns [ErrNotLoggedIn] before a successful Login.
	RefreshToken(ctx context.Context) error

	// Logout revokes the token on the server and forgets the credentials.
	Logout(ctx context.Context) error

	// Token returns the API token currently in use, or an empty string.
	Token() string

	// Username returns the name of the logged-in user, or an empty string.
	Username() string
}

// ClientPostService defines the client-side contract for reading and
// writing posts through the REST API. A request refused because the token
// expired is retried once after a token refresh.
type ClientPostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)

	// GetPost returns a post of the logged-in user. Posts of other authors
	// yield [ErrForbidden].
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	CreatePost(ctx context.Context, form models.PostForm) (models.Post, error)
}

// ClientAppInfoService reports information about the remote server.
type ClientAppInfoService interface {
	GetServerVersion(ctx context.Context) (string, error)
}
