package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// AuthService covers registration, password checks and browser sessions.
type AuthService interface {
	// RegisterUser validates form, rejects a taken username with
	// [ErrUserAlreadyRegistered] and stores the new user with a bcrypt hash.
	RegisterUser(ctx context.Context, form models.RegisterForm) (models.User, error)

	// Login checks the credentials of an HTML login attempt.
	Login(ctx context.Context, username, password string) (models.User, error)

	// VerifyPassword checks the credentials sent with HTTP Basic auth.
	// Unknown user and wrong password both yield [ErrWrongCredentials].
	VerifyPassword(ctx context.Context, username, password string) (models.User, error)

	CreateSessionToken(ctx context.Context, user models.User) (models.SessionToken, error)
	ParseSessionToken(ctx context.Context, tokenString string) (models.SessionToken, error)

	// IdentifyUser loads the user a session refers to.
	IdentifyUser(ctx context.Context, userID int64) (models.User, error)
}

// TokenService issues, checks and revokes REST API bearer tokens.
type TokenService interface {
	// GetAPIToken returns the current token of user when it stays valid for
	// more than a minute, and a freshly minted one otherwise.
	GetAPIToken(ctx context.Context, user models.User) (models.APIToken, error)

	// CheckAPIToken returns the holder of a still valid token or
	// [ErrTokenIsExpiredOrInvalid].
	CheckAPIToken(ctx context.Context, token string) (models.User, error)

	// RevokeAPIToken expires the token of user immediately.
	RevokeAPIToken(ctx context.Context, user models.User) error
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, request models.UserRequest) (models.User, error)

	// UpdateUser applies the provided fields of request to the user. Only the
	// user stored in ctx may update itself.
	UpdateUser(ctx context.Context, userID int64, request models.UserRequest) (models.User, error)
}

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListPostsByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)

	// GetPost fetches a post. With checkAuthor set, a post not written by the
	// user stored in ctx yields [ErrForbidden].
	GetPost(ctx context.Context, postID int64, checkAuthor bool) (models.Post, error)

	// CreatePost stores a post authored by the user stored in ctx.
	CreatePost(ctx context.Context, request models.PostRequest) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, request models.PostRequest) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
