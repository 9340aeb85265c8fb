package service

import (
	"context"
	"fmt"

	"github.com/tapteam/tap-server/internal/config"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/store"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials by recomputing the stored digest — SHA-256 over
// the plaintext concatenated with a server-wide secret — and it owns session
// creation and token resolution.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// sessionRepository is the data-access layer for login sessions.
	sessionRepository store.SessionRepository

	// secret is the server-wide value appended to plaintext passwords
	// before hashing. Must match the value used when the digest was stored.
	secret string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the user and session
// repositories, with the hashing secret taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(storages *store.Storages, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    storages.UserRepository,
		sessionRepository: storages.SessionRepository,
		secret:            cfg.Secret,
		logger:            logger,
	}
}

// Authenticate verifies a username/password pair.
//
// The plaintext is hashed and the repository is asked for a user matching
// both the username and the digest in a single lookup, so a wrong username
// and a wrong password are indistinguishable to the caller.
//
// Returns the matched user or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrNoUserWasFound (wrapped) when no row matches — callers must
//     treat this as "no match", not as a failure of the service.
//   - ErrUserDisabled when the credentials match a disabled account.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials payload")
		return models.User{}, ErrInvalidDataProvided
	}

	digest := utils.HashPassword(password, a.secret)

	user, err := a.userRepository.FindUserByCredentials(ctx, username, digest)
	if err != nil {
		log.Debug().Err(err).Str("username", username).Msg("credential match failed")
		return models.User{}, fmt.Errorf("credential match failed: %w", err)
	}

	if !user.Enabled {
		log.Warn().Int64("id", user.ID).Str("username", user.Username).Msg("login attempt on disabled account")
		return models.User{}, ErrUserDisabled
	}

	return user, nil
}

// OpenSession creates a session row for user with a freshly generated token
// and returns it with the sanitized user view embedded, ready to be echoed
// in the login response.
func (a *authService) OpenSession(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := a.sessionRepository.CreateSession(ctx, models.Session{
		UserID: user.ID,
		Token:  utils.NewToken(),
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	public := user.Public()
	session.User = &public

	log.Info().Int64("user_id", user.ID).Int64("session_id", session.ID).Msg("session opened")
	return session, nil
}

// SessionUser resolves a presented token to its owning user. Every request
// re-evaluates from whatever credential it presents; there is no cached
// login state.
func (a *authService) SessionUser(ctx context.Context, token string) (models.User, error) {
	session, err := a.sessionRepository.FindSessionByToken(ctx, token)
	if err != nil {
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	user, err := a.userRepository.GetUser(ctx, session.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("session owner lookup failed: %w", err)
	}

	if !user.Enabled {
		return models.User{}, ErrUserDisabled
	}

	return user, nil
}
