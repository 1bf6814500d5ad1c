package models

// UserRequest is the JSON payload of the user create and update endpoints.
// Only non-nil fields are applied on update.
type UserRequest struct {
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// PostRequest is the JSON payload of the post create and update endpoints.
// Only non-nil fields are applied on update.
//
// There is deliberately no author field: ownership of a post never changes,
// so an "author_id" key in a request body is ignored.
type PostRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// RegisterForm holds the fields of the HTML registration form.
type RegisterForm struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// PostForm holds the fields of the HTML create and update post forms.
type PostForm struct {
	Title string
	Body  string
}

// Request converts the form into a PostRequest with every field set.
func (f PostForm) Request() PostRequest {
	return PostRequest{Title: &f.Title, Body: &f.Body}
}
