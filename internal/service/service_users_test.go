package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

func newTestUserService(t *testing.T) (UserService, repos) {
	r := newRepos(t)
	return NewUserService(r.users, r.tx, validators.NewBlogValidator(), testAppConfig, logger.Nop()), r
}

// ── GetUser / ListUsers ──────────────────────────────────────────────────────

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, r := newTestUserService(t)

	r.users.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUser(context.Background(), 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	svc, r := newTestUserService(t)
	users := []models.User{{UserID: 1}, {UserID: 2}}

	r.users.EXPECT().ListUsers(gomock.Any()).Return(users, nil)

	got, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserService_CreateUser_Success(t *testing.T) {
	svc, r := newTestUserService(t)

	r.users.EXPECT().FindUserByUsername(gomock.Any(), "new_user2").Return(models.User{}, store.ErrUserNotFound)
	r.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Empty(t, u.FirstName)
			assert.Empty(t, u.LastName)
			assert.True(t, utils.CheckPassword(u.PasswordHash, "pass2"))
			u.UserID = 2
			return u, nil
		},
	)

	user, err := svc.CreateUser(context.Background(), models.UserRequest{Username: ptr("new_user2"), Password: ptr("pass2")})

	require.NoError(t, err)
	assert.Equal(t, int64(2), user.UserID)
	assert.Equal(t, "new_user2", user.Username)
}

func TestUserService_CreateUser_MissingCredentials(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.CreateUser(context.Background(), models.UserRequest{Username: ptr("u")})

	assert.ErrorIs(t, err, validators.ErrMissingCredentials)
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	svc, r := newTestUserService(t)

	r.users.EXPECT().FindUserByUsername(gomock.Any(), "u").Return(models.User{UserID: 1}, nil)

	_, err := svc.CreateUser(context.Background(), models.UserRequest{Username: ptr("u"), Password: ptr("p")})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

// ── UpdateUser ───────────────────────────────────────────────────────────────

func TestUserService_UpdateUser_NoIdentity(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.UpdateUser(context.Background(), 1, models.UserRequest{})

	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestUserService_UpdateUser_ForbiddenBeforeExistence(t *testing.T) {
	svc, _ := newTestUserService(t)

	// user 99 does not exist, but the identity check comes first
	_, err := svc.UpdateUser(asUser(1), 99, models.UserRequest{Username: ptr("x")})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	svc, r := newTestUserService(t)

	r.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(asUser(1), 1, models.UserRequest{})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateUser_UsernameTaken(t *testing.T) {
	svc, r := newTestUserService(t)

	r.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Username: "a"}, nil)
	r.users.EXPECT().FindUserByUsername(gomock.Any(), "b").Return(models.User{UserID: 2, Username: "b"}, nil)

	_, err := svc.UpdateUser(asUser(1), 1, models.UserRequest{Username: ptr("b")})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_UpdateUser_SameUsernameSkipsCollisionCheck(t *testing.T) {
	svc, r := newTestUserService(t)
	stored := models.User{UserID: 1, Username: "a", PasswordHash: "hash"}

	r.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(stored, nil)
	r.users.EXPECT().UpdateUser(gomock.Any(), models.User{UserID: 1, Username: "a", FirstName: "Ann", PasswordHash: "hash"}).Return(nil)

	user, err := svc.UpdateUser(asUser(1), 1, models.UserRequest{Username: ptr("a"), FirstName: ptr("Ann")})

	require.NoError(t, err)
	assert.Equal(t, "Ann", user.FirstName)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	svc, r := newTestUserService(t)

	r.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Username: "a", PasswordHash: "old"}, nil)
	r.users.EXPECT().FindUserByUsername(gomock.Any(), "c").Return(models.User{}, store.ErrUserNotFound)
	r.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) error {
			assert.Equal(t, "c", u.Username)
			assert.True(t, utils.CheckPassword(u.PasswordHash, "new-pass"))
			return nil
		},
	)

	_, err := svc.UpdateUser(asUser(1), 1, models.UserRequest{Username: ptr("c"), Password: ptr("new-pass")})

	require.NoError(t, err)
}

func TestUserService_UpdateUser_EmptyUsername(t *testing.T) {
	svc, r := newTestUserService(t)

	r.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Username: "a"}, nil)

	_, err := svc.UpdateUser(asUser(1), 1, models.UserRequest{Username: ptr("")})

	assert.ErrorIs(t, err, validators.ErrEmptyUsername)
}
