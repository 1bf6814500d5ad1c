package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case; unset fields return zero values.
type fakeAuthService struct {
	registerUserFn       func(ctx context.Context, form models.RegisterForm) (models.User, error)
	loginFn              func(ctx context.Context, username, password string) (models.User, error)
	verifyPasswordFn     func(ctx context.Context, username, password string) (models.User, error)
	createSessionTokenFn func(ctx context.Context, user models.User) (models.SessionToken, error)
	parseSessionTokenFn  func(ctx context.Context, tokenString string) (models.SessionToken, error)
	identifyUserFn       func(ctx context.Context, userID int64) (models.User, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, form models.RegisterForm) (models.User, error) {
	if f.registerUserFn == nil {
		return models.User{}, nil
	}
	return f.registerUserFn(ctx, form)
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	if f.loginFn == nil {
		return models.User{}, nil
	}
	return f.loginFn(ctx, username, password)
}

func (f *fakeAuthService) VerifyPassword(ctx context.Context, username, password string) (models.User, error) {
	if f.verifyPasswordFn == nil {
		return models.User{}, service.ErrWrongCredentials
	}
	return f.verifyPasswordFn(ctx, username, password)
}

func (f *fakeAuthService) CreateSessionToken(ctx context.Context, user models.User) (models.SessionToken, error) {
	if f.createSessionTokenFn == nil {
		return models.SessionToken{SignedString: "session-token"}, nil
	}
	return f.createSessionTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseSessionToken(ctx context.Context, tokenString string) (models.SessionToken, error) {
	if f.parseSessionTokenFn == nil {
		return models.SessionToken{}, service.ErrTokenIsExpiredOrInvalid
	}
	return f.parseSessionTokenFn(ctx, tokenString)
}

func (f *fakeAuthService) IdentifyUser(ctx context.Context, userID int64) (models.User, error) {
	if f.identifyUserFn == nil {
		return models.User{UserID: userID}, nil
	}
	return f.identifyUserFn(ctx, userID)
}

type fakeTokenService struct {
	getAPITokenFn    func(ctx context.Context, user models.User) (models.APIToken, error)
	checkAPITokenFn  func(ctx context.Context, token string) (models.User, error)
	revokeAPITokenFn func(ctx context.Context, user models.User) error
}

func (f *fakeTokenService) GetAPIToken(ctx context.Context, user models.User) (models.APIToken, error) {
	if f.getAPITokenFn == nil {
		return models.APIToken{}, nil
	}
	return f.getAPITokenFn(ctx, user)
}

func (f *fakeTokenService) CheckAPIToken(ctx context.Context, token string) (models.User, error) {
	if f.checkAPITokenFn == nil {
		return models.User{}, service.ErrTokenIsExpiredOrInvalid
	}
	return f.checkAPITokenFn(ctx, token)
}

func (f *fakeTokenService) RevokeAPIToken(ctx context.Context, user models.User) error {
	if f.revokeAPITokenFn == nil {
		return nil
	}
	return f.revokeAPITokenFn(ctx, user)
}

type fakeUserService struct {
	getUserFn    func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	createUserFn func(ctx context.Context, request models.UserRequest) (models.User, error)
	updateUserFn func(ctx context.Context, userID int64, request models.UserRequest) (models.User, error)
}

func (f *fakeUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if f.getUserFn == nil {
		return models.User{UserID: userID}, nil
	}
	return f.getUserFn(ctx, userID)
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if f.listUsersFn == nil {
		return nil, nil
	}
	return f.listUsersFn(ctx)
}

func (f *fakeUserService) CreateUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	if f.createUserFn == nil {
		return models.User{}, nil
	}
	return f.createUserFn(ctx, request)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, userID int64, request models.UserRequest) (models.User, error) {
	if f.updateUserFn == nil {
		return models.User{UserID: userID}, nil
	}
	return f.updateUserFn(ctx, userID, request)
}

type fakePostService struct {
	listPostsFn         func(ctx context.Context) ([]models.Post, error)
	listPostsByAuthorFn func(ctx context.Context, authorID int64) ([]models.Post, error)
	getPostFn           func(ctx context.Context, postID int64, checkAuthor bool) (models.Post, error)
	createPostFn        func(ctx context.Context, request models.PostRequest) (models.Post, error)
	updatePostFn        func(ctx context.Context, postID int64, request models.PostRequest) (models.Post, error)
	deletePostFn        func(ctx context.Context, postID int64) error
}

func (f *fakePostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	if f.listPostsFn == nil {
		return nil, nil
	}
	return f.listPostsFn(ctx)
}

func (f *fakePostService) ListPostsByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	if f.listPostsByAuthorFn == nil {
		return nil, nil
	}
	return f.listPostsByAuthorFn(ctx, authorID)
}

func (f *fakePostService) GetPost(ctx context.Context, postID int64, checkAuthor bool) (models.Post, error) {
	if f.getPostFn == nil {
		return models.Post{PostID: postID}, nil
	}
	return f.getPostFn(ctx, postID, checkAuthor)
}

func (f *fakePostService) CreatePost(ctx context.Context, request models.PostRequest) (models.Post, error) {
	if f.createPostFn == nil {
		return models.Post{}, nil
	}
	return f.createPostFn(ctx, request)
}

func (f *fakePostService) UpdatePost(ctx context.Context, postID int64, request models.PostRequest) (models.Post, error) {
	if f.updatePostFn == nil {
		return models.Post{PostID: postID}, nil
	}
	return f.updatePostFn(ctx, postID, request)
}

func (f *fakePostService) DeletePost(ctx context.Context, postID int64) error {
	if f.deletePostFn == nil {
		return nil
	}
	return f.deletePostFn(ctx, postID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices returns a Services value whose every service is a fake.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &fakeAuthService{},
		TokenService:   &fakeTokenService{},
		UserService:    &fakeUserService{},
		PostService:    &fakePostService{},
		AppInfoService: &fakeAppInfoService{version: "test"},
	}
}

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, config.App{SessionCookie: "session"}, logger.Nop())
}

// serve sends req through the full router of h.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// withIdentity makes the fake services treat every request as coming from user.
func withIdentity(svcs *service.Services, user models.User) {
	svcs.AuthService = &fakeAuthService{
		parseSessionTokenFn: func(context.Context, string) (models.SessionToken, error) {
			token, err := utils.GenerateSessionToken("test", user.UserID, time.Hour, "k")
			return token, err
		},
		identifyUserFn: func(context.Context, int64) (models.User, error) { return user, nil },
	}
	svcs.TokenService = &fakeTokenService{
		checkAPITokenFn: func(context.Context, string) (models.User, error) { return user, nil },
	}
}

// browserRequest builds a request carrying a session cookie.
func browserRequest(method, target, form string) *http.Request {
	var req *http.Request
	if form != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: "cookie"})
	return req
}

// apiRequest builds a request carrying a bearer token.
func apiRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer api-token")
	return req
}
