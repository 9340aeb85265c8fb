package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     db,
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userColumns = []string{"id", "username", "first_name", "last_name", "email", "enabled", "type", "password", "created_at", "modified_at"}

func userRow(id int64, username string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns).
		AddRow(id, username, "Alice", "Smith", "alice@example.edu", true, models.UserTypeContributor, "digest", now, now)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.edu",
		Enabled:   true,
		Type:      models.UserTypeContributor,
		Password:  "digest",
	}

	mock.ExpectQuery(`INSERT INTO "user"`).
		WithArgs(user.Username, user.FirstName, user.LastName, user.Email, user.Enabled, user.Type, user.Password).
		WillReturnRows(userRow(1, "alice"))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "user"`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "user"`).
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "user"`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUser(context.Background(), 42)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	// the credential-lookup sentinel must not leak into id lookups, or a
	// missing record reads as an authentication failure upstream
	if errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("id lookup must not return the credential sentinel")
	}
}

func TestFindUserByCredentials_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "user"`).
		WithArgs("alice", "digest").
		WillReturnRows(userRow(1, "alice"))

	user, err := repo.FindUserByCredentials(context.Background(), "alice", "digest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username alice, got %s", user.Username)
	}
}

func TestFindUserByCredentials_NoMatchIsNotAFault(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "user"`).
		WithArgs("alice", "wrong-digest").
		WillReturnRows(sqlmock.NewRows(userColumns)) // zero rows

	_, err := repo.FindUserByCredentials(context.Background(), "alice", "wrong-digest")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound for a credential mismatch, got %v", err)
	}
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := userRow(1, "alice")
	now := time.Now()
	rows.AddRow(2, "bob", "Bob", "Jones", "bob@example.edu", true, models.UserTypeAdmin, "digest2", now, now)

	mock.ExpectQuery(`SELECT (.+) FROM "user" ORDER BY id`).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	users, total, err := repo.ListUsers(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
	if total != 2 {
		t.Errorf("expected total=2, got %d", total)
	}
}

func TestUpdateUser_PartialFields(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	email := "new@example.edu"
	enabled := false

	mock.ExpectQuery(`UPDATE "user" SET`).
		WithArgs(email, enabled, int64(1)).
		WillReturnRows(userRow(1, "alice"))

	_, err := repo.UpdateUser(context.Background(), 1, models.UserUpdate{
		Email:   &email,
		Enabled: &enabled,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	name := "Alicia"

	mock.ExpectQuery(`UPDATE "user" SET`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateUser(context.Background(), 99, models.UserUpdate{FirstName: &name})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
