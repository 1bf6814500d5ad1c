// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the HTML
// pages, the REST API and the command line.
package app

const (
	// Registration form.
	MsgUsernameRequired      = "Username is required!"
	MsgPasswordRequired      = "Password is required!"
	MsgPasswordTooLong       = "Password must be at most 72 bytes."
	MsgUserAlreadyRegistered = "User %s is already registered!"

	// MsgIncorrectCredentials is flashed on a failed login. It never tells
	// which of the two fields was wrong.
	MsgIncorrectCredentials = "Incorrect username or password!"

	// Post forms.
	MsgTitleRequired = "Title is required."
	MsgTitleTooLong  = "Title must be at most 80 characters."
	MsgNameTooLong   = "Names must be at most 80 characters."

	// MsgPostNotFound is formatted with the requested post id.
	MsgPostNotFound = "Post id %d doesn't exist."
	MsgUserNotFound = "User id %d doesn't exist."

	// REST API user management.
	MsgMandatoryFields      = "Username and password are mandatory fields"
	MsgUserAlreadyExist     = "The user is already exist, please use a different username"
	MsgUseDifferentUsername = "Please use a different username"

	MsgInvalidDataProvided = "invalid data provided"
	MsgAccessDenied        = "You don't have the permission to access the requested resource."
	MsgInternalServerError = "The server encountered an internal error."
	MsgPageNotFound        = "The requested URL was not found on the server."
	MsgMethodNotAllowed    = "The method is not allowed for the requested URL."

	// MsgDatabaseInitialized is printed by the init-db command.
	MsgDatabaseInitialized = "Database is initialized"
)
