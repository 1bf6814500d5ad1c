package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
	"github.com/MKhiriev/go-blog/models"
)

func newTestPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestPostgresDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "username", "password_hash", "first_name", "last_name", "token", "token_expiration", "post_count"}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "john", PasswordHash: "hash", FirstName: "John"}

	mock.ExpectQuery(`INSERT INTO "user" \(username,password_hash,first_name,last_name\)`).
		WithArgs("john", "hash", "John", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, "john", created.Username)
	assert.Zero(t, created.PostCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO "user"`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.ErrorIs(t, err, ErrUniqueViolation)
}

func TestCreateUser_OtherDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO "user"`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
}

// ─────────────────────────────────────────────
// Find*
// ─────────────────────────────────────────────

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	exp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`SELECT u.id, u.username, .* FROM "user" u WHERE u.id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(3, "anna", "h", "Anna", "K", "tok", exp, 2))

	user, err := repo.FindUserByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, models.User{
		UserID:             3,
		Username:           "anna",
		PasswordHash:       "h",
		FirstName:          "Anna",
		LastName:           "K",
		APIToken:           "tok",
		APITokenExpiration: exp,
		PostCount:          2,
	}, user)
}

func TestFindUserByUsername_NullToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`WHERE u.username = \$1`).
		WithArgs("anna").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(3, "anna", "h", "", "", nil, nil, 0))

	user, err := repo.FindUserByUsername(context.Background(), "anna")
	require.NoError(t, err)
	assert.Empty(t, user.APIToken)
	assert.True(t, user.APITokenExpiration.IsZero())
}

func TestFindUserByAPIToken_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`WHERE u.token = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByAPIToken(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsers_OrderedByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM "user" u ORDER BY u.id`).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "a", "h", "", "", nil, nil, 0).
			AddRow(2, "b", "h", "", "", nil, nil, 5))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(5), users[1].PostCount)
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM "user" u`).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

// ─────────────────────────────────────────────
// UpdateUser / SaveAPIToken
// ─────────────────────────────────────────────

func TestUpdateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE "user" SET username = \$1, password_hash = \$2, first_name = \$3, last_name = \$4 WHERE id = \$5`).
		WithArgs("new", "h", "F", "L", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUser(context.Background(), models.User{UserID: 1, Username: "new", PasswordHash: "h", FirstName: "F", LastName: "L"})
	require.NoError(t, err)
}

func TestUpdateUser_NoRows(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE "user"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUser(context.Background(), models.User{UserID: 99})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_UsernameTaken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE "user"`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.UpdateUser(context.Background(), models.User{UserID: 1, Username: "taken"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestSaveAPIToken_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	exp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "user" SET token = \$1, token_expiration = \$2 WHERE id = \$3`).
		WithArgs("tok", exp, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveAPIToken(context.Background(), 4, "tok", exp))
}
