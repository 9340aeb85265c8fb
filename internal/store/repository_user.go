package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/models"
)

// psql builds dynamic queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, listing, and partial updates against
// the "user" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     Querier
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database handle and logger.
func NewUserRepository(db Querier, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, timestamps).
//
// The caller is expected to have replaced the plaintext password with its
// digest already; the repository stores whatever it is given.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.FirstName, user.LastName, user.Email, user.Enabled, user.Type, user.Password)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		case "":
			return models.User{}, err
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetUser retrieves a single user by primary key.
// Returns [ErrRecordNotFound] when the id matches no row.
func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getUser, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ListUsers returns one page of users ordered by id, plus the total row
// count for pagination envelopes.
func (r *userRepository) ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "username", "first_name", "last_name", "email", "enabled", "type", "password", "created_at", "modified_at").
		From(`"user"`).
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: listing users failed")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := countRows(ctx, r.db, `"user"`)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateUser applies the non-nil fields of update to the user row and
// returns the refreshed record. A supplied Password must already be a
// digest. modified_at is bumped on every update.
//
// Error handling:
//   - no row with the given id → [ErrRecordNotFound].
//   - unique_violation → [ErrUsernameAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update(`"user"`).Set("modified_at", sq.Expr("NOW()"))
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Enabled != nil {
		builder = builder.Set("enabled", *update.Enabled)
	}
	if update.Type != nil {
		builder = builder.Set("type", *update.Type)
	}
	if update.Password != nil {
		builder = builder.Set("password", *update.Password)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, username, first_name, last_name, email, enabled, type, password, created_at, modified_at").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: updating user failed")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByCredentials retrieves the user whose username AND stored digest
// both match. Zero rows yields [ErrNoUserWasFound] — a wrong username or a
// wrong password are indistinguishable by design.
func (r *userRepository) FindUserByCredentials(ctx context.Context, username, digest string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByCredentials, username, digest)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByCredentials").Msg("error: credential lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.Email,
		&user.Enabled, &user.Type, &user.Password, &user.CreatedAt, &user.ModifiedAt)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// countRows returns SELECT COUNT(*) for the given table.
func countRows(ctx context.Context, db Querier, table string) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building sql query: %w", err)
	}

	var total int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	return total, nil
}
