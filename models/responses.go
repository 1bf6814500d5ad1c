package models

// UsersResponse is the collection representation of users.
type UsersResponse struct {
	Users []User `json:"users"`
	Count int    `json:"count"`
}

// NewUsersResponse wraps users into a collection, never serializing a null list.
func NewUsersResponse(users []User) UsersResponse {
	if users == nil {
		users = []User{}
	}
	return UsersResponse{Users: users, Count: len(users)}
}

// PostsResponse is the collection representation of posts.
type PostsResponse struct {
	Posts []Post `json:"posts"`
	Count int    `json:"count"`
}

// NewPostsResponse wraps posts into a collection, never serializing a null list.
func NewPostsResponse(posts []Post) PostsResponse {
	if posts == nil {
		posts = []Post{}
	}
	return PostsResponse{Posts: posts, Count: len(posts)}
}

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	// Error is the HTTP status text, e.g. "Not Found".
	Error string `json:"error"`

	// Message is an optional human readable explanation.
	Message string `json:"message,omitempty"`
}
