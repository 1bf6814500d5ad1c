package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided is wrapped by every error caused by bad client
	// input that is not a plain validation rule.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrWrongCredentials = errors.New("incorrect username or password")

	ErrUserAlreadyRegistered = fmt.Errorf("%w: user is already registered", ErrInvalidDataProvided)
	ErrUserAlreadyExists     = fmt.Errorf("%w: user already exists", ErrInvalidDataProvided)
	ErrUsernameTaken         = fmt.Errorf("%w: username is taken", ErrInvalidDataProvided)
	ErrPasswordTooLong       = fmt.Errorf("%w: password is too long", ErrInvalidDataProvided)

	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")

	ErrForbidden  = errors.New("forbidden")
	ErrNoIdentity = errors.New("no identity in context")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ErrNotLoggedIn is returned by client operations that need a logged-in user.
var ErrNotLoggedIn = errors.New("not logged in")

// ServerError is a request refused by the blog server. Kind is one of the
// package sentinels, so errors.Is keeps working, and Message is the text the
// server attached for the user.
type ServerError struct {
	Kind    error
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Kind
}
