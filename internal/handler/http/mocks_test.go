package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/tapteam/tap-server/internal/config"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/service"
	"github.com/tapteam/tap-server/models"
)

const testSessionCookie = "tap_session"

// Function-field mocks for the service interfaces. Only the methods a test
// cares about get a body; calling an unset method panics.

type authServiceMock struct {
	authenticate func(ctx context.Context, username, password string) (models.User, error)
	openSession  func(ctx context.Context, user models.User) (models.Session, error)
	sessionUser  func(ctx context.Context, token string) (models.User, error)
}

func (m *authServiceMock) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	return m.authenticate(ctx, username, password)
}

func (m *authServiceMock) OpenSession(ctx context.Context, user models.User) (models.Session, error) {
	return m.openSession(ctx, user)
}

func (m *authServiceMock) SessionUser(ctx context.Context, token string) (models.User, error) {
	return m.sessionUser(ctx, token)
}

type userServiceMock struct {
	create func(ctx context.Context, user models.User) (models.User, error)
	get    func(ctx context.Context, id int64) (models.User, error)
	list   func(ctx context.Context, page service.Page) ([]models.User, int64, error)
	update func(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
}

func (m *userServiceMock) Create(ctx context.Context, user models.User) (models.User, error) {
	return m.create(ctx, user)
}

func (m *userServiceMock) Get(ctx context.Context, id int64) (models.User, error) {
	return m.get(ctx, id)
}

func (m *userServiceMock) List(ctx context.Context, page service.Page) ([]models.User, int64, error) {
	return m.list(ctx, page)
}

func (m *userServiceMock) Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	return m.update(ctx, id, update)
}

type opportunityServiceMock struct {
	create         func(ctx context.Context, opportunity models.Opportunity) (models.Opportunity, error)
	get            func(ctx context.Context, id int64) (models.Opportunity, error)
	list           func(ctx context.Context, page service.Page) ([]models.Opportunity, int64, error)
	update         func(ctx context.Context, id int64, update models.OpportunityUpdate) (models.Opportunity, error)
	delete         func(ctx context.Context, id int64) error
	linkProvider   func(ctx context.Context, opportunityID, providerID int64) error
	unlinkProvider func(ctx context.Context, opportunityID, providerID int64) error
}

func (m *opportunityServiceMock) Create(ctx context.Context, opportunity models.Opportunity) (models.Opportunity, error) {
	return m.create(ctx, opportunity)
}

func (m *opportunityServiceMock) Get(ctx context.Context, id int64) (models.Opportunity, error) {
	return m.get(ctx, id)
}

func (m *opportunityServiceMock) List(ctx context.Context, page service.Page) ([]models.Opportunity, int64, error) {
	return m.list(ctx, page)
}

func (m *opportunityServiceMock) Update(ctx context.Context, id int64, update models.OpportunityUpdate) (models.Opportunity, error) {
	return m.update(ctx, id, update)
}

func (m *opportunityServiceMock) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

func (m *opportunityServiceMock) LinkProvider(ctx context.Context, opportunityID, providerID int64) error {
	return m.linkProvider(ctx, opportunityID, providerID)
}

func (m *opportunityServiceMock) UnlinkProvider(ctx context.Context, opportunityID, providerID int64) error {
	return m.unlinkProvider(ctx, opportunityID, providerID)
}

type providerServiceMock struct {
	create func(ctx context.Context, provider models.Provider) (models.Provider, error)
	get    func(ctx context.Context, id int64) (models.Provider, error)
	list   func(ctx context.Context, page service.Page) ([]models.Provider, int64, error)
	update func(ctx context.Context, id int64, update models.ProviderUpdate) (models.Provider, error)
	delete func(ctx context.Context, id int64) error
}

func (m *providerServiceMock) Create(ctx context.Context, provider models.Provider) (models.Provider, error) {
	return m.create(ctx, provider)
}

func (m *providerServiceMock) Get(ctx context.Context, id int64) (models.Provider, error) {
	return m.get(ctx, id)
}

func (m *providerServiceMock) List(ctx context.Context, page service.Page) ([]models.Provider, int64, error) {
	return m.list(ctx, page)
}

func (m *providerServiceMock) Update(ctx context.Context, id int64, update models.ProviderUpdate) (models.Provider, error) {
	return m.update(ctx, id, update)
}

func (m *providerServiceMock) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type associationServiceMock struct {
	create func(ctx context.Context, association models.Association) (models.Association, error)
}

func (m *associationServiceMock) Create(ctx context.Context, association models.Association) (models.Association, error) {
	return m.create(ctx, association)
}

// newTestHandler builds a Handler over the given services with the test
// cookie name and a silent logger.
func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.App{SessionCookie: testSessionCookie}, logger.Nop())
}

// loggedInAuth returns an auth mock whose SessionUser accepts any token and
// resolves it to the given user. Tests that exercise gated routes attach a
// cookie and use this mock.
func loggedInAuth(user models.User) *authServiceMock {
	return &authServiceMock{
		sessionUser: func(context.Context, string) (models.User, error) {
			return user, nil
		},
	}
}

// newTestServer mounts the full router, so tests exercise the real
// middleware chain.
func newTestServer(services *service.Services) *httptest.Server {
	return httptest.NewServer(newTestHandler(services).Init())
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	return bytes.NewReader(data)
}
