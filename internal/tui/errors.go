// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
)

// ErrUserQuit is returned by the flows when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

var errorMessages = []struct {
	err error
	msg string
}{
	{validators.ErrEmptyUsername, app.MsgUsernameRequired},
	{validators.ErrEmptyPassword, app.MsgPasswordRequired},
	{validators.ErrUsernameTooLong, "Username must be at most 80 characters."},
	{validators.ErrNameTooLong, app.MsgNameTooLong},
	{validators.ErrEmptyTitle, app.MsgTitleRequired},
	{validators.ErrTitleTooLong, app.MsgTitleTooLong},
	{service.ErrWrongCredentials, app.MsgIncorrectCredentials},
	{service.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{service.ErrTokenIsExpiredOrInvalid, "Your session has expired. Log in again."},
	{service.ErrForbidden, "You can only open your own posts."},
}

// humanizeError turns a client service error into a line for the screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var serverErr *service.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Error()
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable."
	}

	return err.Error()
}
