package service

import (
	"context"

	"github.com/tapteam/tap-server/models"
)

// Function-field mocks for the store repositories. Only the methods a test
// cares about get a body; calling an unset method panics, which is exactly
// the failure we want for an unexpected call.

type userRepoMock struct {
	createUser            func(ctx context.Context, user models.User) (models.User, error)
	getUser               func(ctx context.Context, id int64) (models.User, error)
	listUsers             func(ctx context.Context, limit, offset uint64) ([]models.User, int64, error)
	updateUser            func(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	findUserByCredentials func(ctx context.Context, username, digest string) (models.User, error)
}

func (m *userRepoMock) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUser(ctx, user)
}

func (m *userRepoMock) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUser(ctx, id)
}

func (m *userRepoMock) ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, int64, error) {
	return m.listUsers(ctx, limit, offset)
}

func (m *userRepoMock) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	return m.updateUser(ctx, id, update)
}

func (m *userRepoMock) FindUserByCredentials(ctx context.Context, username, digest string) (models.User, error) {
	return m.findUserByCredentials(ctx, username, digest)
}

type sessionRepoMock struct {
	createSession      func(ctx context.Context, session models.Session) (models.Session, error)
	findSessionByToken func(ctx context.Context, token string) (models.Session, error)
}

func (m *sessionRepoMock) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	return m.createSession(ctx, session)
}

func (m *sessionRepoMock) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	return m.findSessionByToken(ctx, token)
}

type providerRepoMock struct {
	createProvider func(ctx context.Context, provider models.Provider) (models.Provider, error)
	getProvider    func(ctx context.Context, id int64) (models.Provider, error)
	listProviders  func(ctx context.Context, limit, offset uint64) ([]models.Provider, int64, error)
	updateProvider func(ctx context.Context, id int64, update models.ProviderUpdate) (models.Provider, error)
	deleteProvider func(ctx context.Context, id int64) error
}

func (m *providerRepoMock) CreateProvider(ctx context.Context, provider models.Provider) (models.Provider, error) {
	return m.createProvider(ctx, provider)
}

func (m *providerRepoMock) GetProvider(ctx context.Context, id int64) (models.Provider, error) {
	return m.getProvider(ctx, id)
}

func (m *providerRepoMock) ListProviders(ctx context.Context, limit, offset uint64) ([]models.Provider, int64, error) {
	return m.listProviders(ctx, limit, offset)
}

func (m *providerRepoMock) UpdateProvider(ctx context.Context, id int64, update models.ProviderUpdate) (models.Provider, error) {
	return m.updateProvider(ctx, id, update)
}

func (m *providerRepoMock) DeleteProvider(ctx context.Context, id int64) error {
	return m.deleteProvider(ctx, id)
}

type associationRepoMock struct {
	createAssociation func(ctx context.Context, association models.Association) (models.Association, error)
	associationsOf    func(ctx context.Context, opportunityID int64) ([]models.Association, error)
}

func (m *associationRepoMock) CreateAssociation(ctx context.Context, association models.Association) (models.Association, error) {
	return m.createAssociation(ctx, association)
}

func (m *associationRepoMock) AssociationsOf(ctx context.Context, opportunityID int64) ([]models.Association, error) {
	return m.associationsOf(ctx, opportunityID)
}
