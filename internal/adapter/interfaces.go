// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the blog server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the REST protocol. The package ships an HTTP
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the blog
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// CreateUser registers a new account. It needs no authentication.
	CreateUser(ctx context.Context, request models.UserRequest) (models.User, error)

	// RequestToken exchanges Basic credentials for an API token and stores it
	// via SetToken.
	RequestToken(ctx context.Context, username, password string) (models.APIToken, error)

	// RevokeToken invalidates the current token on the server and forgets it
	// locally, even when the server call fails.
	RevokeToken(ctx context.Context) error

	// ListPosts returns every post, newest first.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// GetPost returns a single post. The server only shows posts to their author.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// CreatePost publishes a post authored by the token holder.
	CreatePost(ctx context.Context, request models.PostRequest) (models.Post, error)

	// GetVersion returns the server application version.
	GetVersion(ctx context.Context) (string, error)
}
