package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts, their credentials and API tokens.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned UserID.
	// A duplicate username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given id or [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByUsername returns the user with exactly this username or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByAPIToken returns the holder of token or [ErrUserNotFound].
	// Expiration is not checked here.
	FindUserByAPIToken(ctx context.Context, token string) (models.User, error)

	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser overwrites username, names and password hash of the user
	// identified by user.UserID.
	UpdateUser(ctx context.Context, user models.User) error

	// SaveAPIToken stores token and its expiration for the user.
	SaveAPIToken(ctx context.Context, userID int64, token string, expiration time.Time) error
}

// PostRepository persists blog posts.
type PostRepository interface {
	// CreatePost inserts post and returns it with the assigned PostID.
	// A missing author yields [ErrAuthorNotFound].
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// FindPostByID returns the post joined with its author or [ErrPostNotFound].
	FindPostByID(ctx context.Context, postID int64) (models.Post, error)

	// ListPosts returns every post, newest first.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// FindPostsByAuthor returns the posts of one author, newest first.
	FindPostsByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)

	// UpdatePost overwrites title and body of the post identified by post.PostID.
	UpdatePost(ctx context.Context, post models.Post) error

	// DeletePost removes the post with the given id.
	DeletePost(ctx context.Context, postID int64) error
}

// Transactor runs a function inside one database transaction. Repositories
// called with the context handed to fn take part in that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
