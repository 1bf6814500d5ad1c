package models

import "time"

// User represents a registered blog author.
//
// The password hash and the API token never leave the server: both are
// excluded from JSON, and the token is only handed out explicitly by the
// token endpoint.
type User struct {
	// UserID is the primary key of the user.
	UserID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// APIToken is the opaque bearer credential for the REST API.
	// Empty when no token was ever issued.
	APIToken string `json:"-"`

	// APITokenExpiration is the moment APIToken stops being accepted.
	// Zero when no token was ever issued.
	APITokenExpiration time.Time `json:"-"`

	// PostCount is the number of posts authored by the user.
	// It is computed on read and never persisted.
	PostCount int64 `json:"post_count"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "user"
}

// HasAPITokenValidAfter reports whether the user holds an API token that is
// still accepted at moment t.
func (u User) HasAPITokenValidAfter(t time.Time) bool {
	return u.APIToken != "" && u.APITokenExpiration.After(t)
}
