package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapteam/tap-server/internal/config"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/store"
	"github.com/tapteam/tap-server/internal/utils"
	"github.com/tapteam/tap-server/models"
)

const testSecret = "test-secret"

func newTestAuthService(users *userRepoMock, sessions *sessionRepoMock) AuthService {
	storages := &store.Storages{
		UserRepository:    users,
		SessionRepository: sessions,
	}
	return NewAuthService(storages, config.App{Secret: testSecret}, logger.Nop())
}

func TestAuthenticate_Success(t *testing.T) {
	users := &userRepoMock{
		findUserByCredentials: func(_ context.Context, username, digest string) (models.User, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, utils.HashPassword("hunter2", testSecret), digest)
			return models.User{ID: 7, Username: username, Enabled: true}, nil
		},
	}
	auth := newTestAuthService(users, nil)

	user, err := auth.Authenticate(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestAuthenticate_NoMatch(t *testing.T) {
	users := &userRepoMock{
		findUserByCredentials: func(context.Context, string, string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	auth := newTestAuthService(users, nil)

	_, err := auth.Authenticate(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	users := &userRepoMock{
		findUserByCredentials: func(context.Context, string, string) (models.User, error) {
			return models.User{ID: 7, Username: "alice", Enabled: false}, nil
		},
	}
	auth := newTestAuthService(users, nil)

	_, err := auth.Authenticate(context.Background(), "alice", "hunter2")
	require.ErrorIs(t, err, ErrUserDisabled)
}

func TestAuthenticate_EmptyCredentials(t *testing.T) {
	auth := newTestAuthService(&userRepoMock{}, nil)

	_, err := auth.Authenticate(context.Background(), "", "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestOpenSession(t *testing.T) {
	sessions := &sessionRepoMock{
		createSession: func(_ context.Context, session models.Session) (models.Session, error) {
			assert.Equal(t, int64(7), session.UserID)
			assert.NotEmpty(t, session.Token)
			session.ID = 1
			return session, nil
		},
	}
	auth := newTestAuthService(nil, sessions)

	session, err := auth.OpenSession(context.Background(), models.User{ID: 7, Username: "alice", Password: "digest", Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.ID)

	// the embedded user view must not leak the stored digest
	require.NotNil(t, session.User)
	assert.Equal(t, "alice", session.User.Username)
	assert.Empty(t, session.User.Password)
}

func TestSessionUser_Success(t *testing.T) {
	sessions := &sessionRepoMock{
		findSessionByToken: func(_ context.Context, token string) (models.Session, error) {
			assert.Equal(t, "token-1", token)
			return models.Session{ID: 1, UserID: 7, Token: token}, nil
		},
	}
	users := &userRepoMock{
		getUser: func(_ context.Context, id int64) (models.User, error) {
			assert.Equal(t, int64(7), id)
			return models.User{ID: id, Username: "alice", Enabled: true}, nil
		},
	}
	auth := newTestAuthService(users, sessions)

	user, err := auth.SessionUser(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestSessionUser_UnknownToken(t *testing.T) {
	sessions := &sessionRepoMock{
		findSessionByToken: func(context.Context, string) (models.Session, error) {
			return models.Session{}, store.ErrSessionNotFound
		},
	}
	auth := newTestAuthService(nil, sessions)

	_, err := auth.SessionUser(context.Background(), "stale")
	require.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionUser_DisabledOwner(t *testing.T) {
	sessions := &sessionRepoMock{
		findSessionByToken: func(_ context.Context, token string) (models.Session, error) {
			return models.Session{ID: 1, UserID: 7, Token: token}, nil
		},
	}
	users := &userRepoMock{
		getUser: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Enabled: false}, nil
		},
	}
	auth := newTestAuthService(users, sessions)

	_, err := auth.SessionUser(context.Background(), "token-1")
	require.ErrorIs(t, err, ErrUserDisabled)
}
