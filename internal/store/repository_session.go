package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. Session rows are append-only: no update or delete path
// exists, so an issued token stays valid until the row is cleared out of
// band.
type sessionRepository struct {
	logger *logger.Logger
	db     Querier
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database handle and logger.
func NewSessionRepository(db Querier, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session and returns it with server-assigned
// fields (ID, timestamps). The token must be unique; a collision surfaces as
// a wrapped unique_violation rather than a sentinel because callers generate
// tokens from UUIDs and a collision indicates a bug, not a user mistake.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.UserID, session.Token)

	var created models.Session
	err := row.Scan(&created.ID, &created.UserID, &created.Token, &created.CreatedAt, &created.ModifiedAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: creating session failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Session{}, ErrInvalidReference
		case pgerrcode.UniqueViolation:
			return models.Session{}, fmt.Errorf("session token collision: %w", err)
		case "":
			return models.Session{}, err
		default:
			return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindSessionByToken retrieves the session carrying the given token.
// Returns [ErrSessionNotFound] when no session matches — the caller treats
// the request as anonymous.
func (r *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findSessionByToken, token)

	var session models.Session
	err := row.Scan(&session.ID, &session.UserID, &session.Token, &session.CreatedAt, &session.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error: session lookup failed")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}
