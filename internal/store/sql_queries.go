package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	userTable = `"user"`
	postTable = "post"
)

var (
	userColumns = []string{
		"u.id",
		"u.username",
		"u.password_hash",
		"u.first_name",
		"u.last_name",
		"u.token",
		"u.token_expiration",
		"(SELECT COUNT(*) FROM post pc WHERE pc.author_id = u.id) AS post_count",
	}

	postColumns = []string{
		"p.id",
		"p.title",
		"p.body",
		"p.created",
		"p.author_id",
		"u.username",
	}
)

// selectUsers starts a user query with the computed post_count column.
func (db *DB) selectUsers() sq.SelectBuilder {
	return db.builder.
		Select(userColumns...).
		From(userTable + " u")
}

// selectPosts starts a post query joined with the author row.
func (db *DB) selectPosts() sq.SelectBuilder {
	return db.builder.
		Select(postColumns...).
		From(postTable + " p").
		Join(userTable + " u ON u.id = p.author_id")
}

func newestFirst(b sq.SelectBuilder) sq.SelectBuilder {
	return b.OrderBy("p.created DESC", "p.id DESC")
}
