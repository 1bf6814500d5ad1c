package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is the signed browser session. Its only payload is the
// identifier of the logged-in user, carried in the "sub" claim.
type SessionToken struct {
	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation stored in the cookie.
	SignedString string `json:"-"`

	// UserID is the parsed copy of the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *SessionToken) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Expiration returns the expiration moment of the session, or the zero time
// when the token carries no "exp" claim.
func (t *SessionToken) Expiration() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}

// APIToken is an issued REST API bearer credential.
type APIToken struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"-"`
}
