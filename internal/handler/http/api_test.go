package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp
}

// ─────────────────────────────────────────────
// version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	svcs := newTestServices()
	svcs.AppInfoService = &fakeAppInfoService{version: "1.2.3"}
	h := newTestHandler(svcs)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

// ─────────────────────────────────────────────
// tokens
// ─────────────────────────────────────────────

func TestAPIGetToken(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService = &fakeAuthService{
		verifyPasswordFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{UserID: 1, Username: username}, nil
		},
	}
	svcs.TokenService = &fakeTokenService{
		getAPITokenFn: func(_ context.Context, user models.User) (models.APIToken, error) {
			assert.Equal(t, int64(1), user.UserID)
			return models.APIToken{Token: "abc", Expiration: time.Now().Add(time.Hour)}, nil
		},
	}
	h := newTestHandler(svcs)

	req := httptest.NewRequest(http.MethodPost, "/api/tokens", nil)
	req.SetBasicAuth("alice", "secret")
	rr := serve(h, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"token":"abc"}`, rr.Body.String())
}

func TestAPIGetToken_RequiresBasicAuth(t *testing.T) {
	h := newTestHandler(newTestServices())

	rr := serve(h, apiRequest(http.MethodPost, "/api/tokens", ""))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rr).Error)
}

func TestAPIRevokeToken(t *testing.T) {
	var revoked models.User
	svcs := newTestServices()
	withIdentity(svcs, alice)
	svcs.TokenService.(*fakeTokenService).revokeAPITokenFn = func(_ context.Context, user models.User) error {
		revoked = user
		return nil
	}
	h := newTestHandler(svcs)

	rr := serve(h, apiRequest(http.MethodDelete, "/api/tokens", ""))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, alice.UserID, revoked.UserID)
}

func TestAPI_RequiresToken(t *testing.T) {
	h := newTestHandler(newTestServices())

	routes := []struct{ method, path string }{
		{http.MethodDelete, "/api/tokens"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/1"},
		{http.MethodPut, "/api/users/1"},
		{http.MethodGet, "/api/users/1/posts"},
		{http.MethodGet, "/api/posts"},
		{http.MethodPost, "/api/posts"},
		{http.MethodGet, "/api/posts/1"},
		{http.MethodPut, "/api/posts/1"},
		{http.MethodDelete, "/api/posts/1"},
	}

	for _, route := range routes {
		rr := serve(h, httptest.NewRequest(route.method, route.path, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code, route.method+" "+route.path)
		assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Bearer", route.method+" "+route.path)
	}
}

// ─────────────────────────────────────────────
// users
// ─────────────────────────────────────────────

func TestAPICreateUser(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		createErr   error
		wantStatus  int
		wantMessage string
	}{
		{name: "created", body: `{"username":"carol","password":"pw"}`, wantStatus: http.StatusCreated},
		{
			name:        "missing credentials",
			body:        `{"username":"carol"}`,
			createErr:   validators.ErrMissingCredentials,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username and password are mandatory fields",
		},
		{
			name:        "duplicate username",
			body:        `{"username":"alice","password":"pw"}`,
			createErr:   service.ErrUserAlreadyExists,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "The user is already exist, please use a different username",
		},
		{
			name:        "malformed json",
			body:        `{"username":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.UserService = &fakeUserService{
				createUserFn: func(_ context.Context, request models.UserRequest) (models.User, error) {
					if tt.createErr != nil {
						return models.User{}, tt.createErr
					}
					return models.User{UserID: 3, Username: *request.Username}, nil
				},
			}
			h := newTestHandler(svcs)

			req := apiRequest(http.MethodPost, "/api/users", tt.body)
			req.Header.Del("Authorization")
			rr := serve(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "/api/users/3", rr.Header().Get("Location"))
				assert.JSONEq(t, `{"id":3,"username":"carol","first_name":"","last_name":"","post_count":0}`, rr.Body.String())
				return
			}
			resp := decodeError(t, rr)
			assert.Equal(t, "Bad Request", resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestAPIListUsers(t *testing.T) {
	svcs := newTestServices()
	withIdentity(svcs, alice)
	svcs.UserService = &fakeUserService{
		listUsersFn: func(context.Context) ([]models.User, error) {
			return []models.User{{UserID: 1, Username: "alice", PostCount: 2}}, nil
		},
	}
	h := newTestHandler(svcs)

	rr := serve(h, apiRequest(http.MethodGet, "/api/users", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"users":[{"id":1,"username":"alice","first_name":"","last_name":"","post_count":2}],"count":1}`,
		rr.Body.String())
}

func TestAPIGetUser(t *testing.T) {
	svcs := newTestServices()
	withIdentity(svcs, alice)
	svcs.UserService = &fakeUserService{
		getUserFn: func(_ context.Context, id int64) (models.User, error) {
			if id == 1 {
				return models.User{UserID: 1, Username: "alice", PasswordHash: "secret-hash", APIToken: "tok"}, nil
			}
			return models.User{}, service.ErrUserNotFound
		},
	}
	h := newTestHandler(svcs)

	rr := serve(h, apiRequest(http.MethodGet, "/api/users/1", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret-hash")
	assert.NotContains(t, rr.Body.String(), `"tok"`)

	rr = serve(h, apiRequest(http.MethodGet, "/api/users/9", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User id 9 doesn't exist.", decodeError(t, rr).Message)
}

func TestAPIUpdateUser(t *testing.T) {
	tests := []struct {
		name        string
		updateErr   error
		wantStatus  int
		wantMessage string
	}{
		{name: "updated", wantStatus: http.StatusOK},
		{name: "other user", updateErr: service.ErrForbidden, wantStatus: http.StatusForbidden, wantMessage: "You don't have the permission to access the requested resource."},
		{name: "name taken", updateErr: service.ErrUsernameTaken, wantStatus: http.StatusBadRequest, wantMessage: "Please use a different username"},
		{name: "too long name", updateErr: validators.ErrNameTooLong, wantStatus: http.StatusBadRequest, wantMessage: "Names must be at most 80 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			withIdentity(svcs, alice)
			svcs.UserService = &fakeUserService{
				updateUserFn: func(_ context.Context, id int64, request models.UserRequest) (models.User, error) {
					require.NotNil(t, request.FirstName)
					return models.User{UserID: id, Username: "alice", FirstName: *request.FirstName}, tt.updateErr
				},
			}
			h := newTestHandler(svcs)

			rr := serve(h, apiRequest(http.MethodPut, "/api/users/1", `{"first_name":"Al"}`))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, rr).Message)
			}
		})
	}
}

func TestAPIListUserPosts(t *testing.T) {
	svcs := newTestServices()
	withIdentity(svcs, alice)
	svcs.PostService = &fakePostService{
		listPostsByAuthorFn: func(_ context.Context, authorID int64) ([]models.Post, error) {
			if authorID != 1 {
				return nil, service.ErrUserNotFound
			}
			return nil, nil
		},
	}
	h := newTestHandler(svcs)

	rr := serve(h, apiRequest(http.MethodGet, "/api/users/1/posts", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"posts":[],"count":0}`, rr.Body.String())

	rr = serve(h, apiRequest(http.MethodGet, "/api/users/4/posts", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// posts
// ─────────────────────────────────────────────

func TestAPIListPosts(t *testing.T) {
	svcs := newTestServices()
	withIdentity(svcs, alice)
	svcs.PostService = &fakePostService{
		listPostsFn: func(context.Context) ([]models.Post, error) { return samplePosts(), nil },
	}
	h := newTestHandler(svcs)

	rr := serve(h, apiRequest(http.MethodGet, "/api/posts", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.PostsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, int64(2), resp.Posts[0].PostID)
	assert.Equal(t, "bob", resp.Posts[0].Author.Username)
}

func TestAPIGetPost(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		getErr     error
		wantStatus int
	}{
		{name: "own post", path: "/api/posts/1", wantStatus: http.StatusOK},
		{name: "foreign post", path: "/api/posts/2", getErr: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "missing post", path: "/api/posts/7", getErr: service.ErrPostNotFound, wantStatus: http.StatusNotFound},
		{name: "zero id", path: "/api/posts/0", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			withIdentity(svcs, alice)
			svcs.PostService = &fakePostService{
				getPostFn: func(_ context.Context, id int64, checkAuthor bool) (models.Post, error) {
					assert.True(t, checkAuthor)
					return models.Post{PostID: id, AuthorID: alice.UserID}, tt.getErr
				},
			}
			h := newTestHandler(svcs)

			rr := serve(h, apiRequest(http.MethodGet, tt.path, ""))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestAPICreatePost(t *testing.T) {
	svcs := newTestServices()
	withIdentity(svcs, alice)
	svcs.PostService = &fakePostService{
		createPostFn: func(_ context.Context, request models.PostRequest) (models.Post, error) {
			if request.Title == nil || *request.Title == "" {
				return models.Post{}, validators.ErrEmptyTitle
			}
			return models.Post{PostID: 11, Title: *request.Title, AuthorID: alice.UserID}, nil
		},
	}
	h := newTestHandler(svcs)

	rr := serve(h, apiRequest(http.MethodPost, "/api/posts", `{"title":"Hi","body":"there","author_id":99}`))
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/posts/11", rr.Header().Get("Location"))

	rr = serve(h, apiRequest(http.MethodPost, "/api/posts", `{"body":"no title"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Title is required.", decodeError(t, rr).Message)
}

func TestAPIUpdatePost(t *testing.T) {
	svcs := newTestServices()
	withIdentity(svcs, alice)
	svcs.PostService = &fakePostService{
		updatePostFn: func(_ context.Context, id int64, request models.PostRequest) (models.Post, error) {
			if id != 1 {
				return models.Post{}, service.ErrForbidden
			}
			assert.Nil(t, request.Title)
			return models.Post{PostID: id, Body: *request.Body}, nil
		},
	}
	h := newTestHandler(svcs)

	rr := serve(h, apiRequest(http.MethodPut, "/api/posts/1", `{"body":"changed"}`))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(h, apiRequest(http.MethodPut, "/api/posts/2", `{"body":"changed"}`))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAPIDeletePost(t *testing.T) {
	svcs := newTestServices()
	withIdentity(svcs, alice)
	svcs.PostService = &fakePostService{
		deletePostFn: func(_ context.Context, id int64) error {
			if id == 1 {
				return nil
			}
			return service.ErrPostNotFound
		},
	}
	h := newTestHandler(svcs)

	rr := serve(h, apiRequest(http.MethodDelete, "/api/posts/1", ""))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = serve(h, apiRequest(http.MethodDelete, "/api/posts/8", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Post id 8 doesn't exist.", decodeError(t, rr).Message)
}

func TestAPI_InternalErrorHidesCause(t *testing.T) {
	svcs := newTestServices()
	withIdentity(svcs, alice)
	svcs.PostService = &fakePostService{
		listPostsFn: func(context.Context) ([]models.Post, error) {
			return nil, errors.New("pq: connection refused")
		},
	}
	h := newTestHandler(svcs)

	rr := serve(h, apiRequest(http.MethodGet, "/api/posts", ""))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
	assert.Equal(t, "The server encountered an internal error.", decodeError(t, rr).Message)
}
