// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a single blog entry owned by exactly one user.
type Post struct {
	PostID  int64     `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Created time.Time `json:"created"`

	// AuthorID references the owning user. It never changes after creation.
	AuthorID int64 `json:"author_id"`

	// Author is filled by queries that join the author row.
	Author *PostAuthor `json:"author,omitempty"`
}

// PostAuthor is the short author representation embedded into posts.
type PostAuthor struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "post"
}

// AuthorName returns the username of the post author, or an empty string
// when the author was not loaded.
func (p Post) AuthorName() string {
	if p.Author == nil {
		return ""
	}
	return p.Author.Username
}

// IsOwnedBy reports whether userID is the author of the post.
func (p Post) IsOwnedBy(userID int64) bool {
	return p.AuthorID == userID
}
