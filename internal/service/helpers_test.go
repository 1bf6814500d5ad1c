package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

var errStorage = errors.New("storage error")

var testAppConfig = config.App{
	SecretKey:        "test-secret",
	SessionIssuer:    "go-blog-test",
	SessionDuration:  time.Hour,
	APITokenDuration: time.Hour,
	PasswordHashCost: bcrypt.MinCost,
	Version:          "test",
}

type repos struct {
	users *mock.MockUserRepository
	posts *mock.MockPostRepository
	tx    *mock.MockTransactor
}

// newRepos returns repository mocks and a transactor that runs fn in place.
func newRepos(t *testing.T) repos {
	t.Helper()
	ctrl := gomock.NewController(t)

	r := repos{
		users: mock.NewMockUserRepository(ctrl),
		posts: mock.NewMockPostRepository(ctrl),
		tx:    mock.NewMockTransactor(ctrl),
	}
	r.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	return r
}

func ptr(s string) *string { return &s }

func asUser(id int64) context.Context {
	return utils.WithCurrentUser(context.Background(), models.User{UserID: id, Username: "identity"})
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return hash
}
