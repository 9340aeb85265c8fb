package service

import (
	"context"

	"github.com/tapteam/tap-server/models"
)

// AuthService owns credential verification and the session lifecycle.
type AuthService interface {
	// Authenticate verifies a username/plaintext-password pair against the
	// stored digests. A non-matching pair yields store.ErrNoUserWasFound —
	// absence is a normal outcome, not a fault. Matching credentials on a
	// disabled account yield ErrUserDisabled.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// OpenSession creates a session row bound to user with a fresh unique
	// token. The returned session embeds the sanitized user view.
	OpenSession(ctx context.Context, user models.User) (models.Session, error)

	// SessionUser resolves a presented session token to its owning user.
	// Unknown tokens yield store.ErrSessionNotFound; disabled owners yield
	// ErrUserDisabled. Sessions do not expire.
	SessionUser(ctx context.Context, token string) (models.User, error)
}

// UserService owns user account CRUD. There is no delete: accounts are
// disabled, never removed.
type UserService interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	List(ctx context.Context, page Page) ([]models.User, int64, error)
	Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
}

// OpportunityService owns opportunity CRUD and provider links.
type OpportunityService interface {
	Create(ctx context.Context, opportunity models.Opportunity) (models.Opportunity, error)
	Get(ctx context.Context, id int64) (models.Opportunity, error)
	List(ctx context.Context, page Page) ([]models.Opportunity, int64, error)
	Update(ctx context.Context, id int64, update models.OpportunityUpdate) (models.Opportunity, error)
	Delete(ctx context.Context, id int64) error

	LinkProvider(ctx context.Context, opportunityID, providerID int64) error
	UnlinkProvider(ctx context.Context, opportunityID, providerID int64) error
}

// ProviderService owns provider CRUD.
type ProviderService interface {
	Create(ctx context.Context, provider models.Provider) (models.Provider, error)
	Get(ctx context.Context, id int64) (models.Provider, error)
	List(ctx context.Context, page Page) ([]models.Provider, int64, error)
	Update(ctx context.Context, id int64, update models.ProviderUpdate) (models.Provider, error)
	Delete(ctx context.Context, id int64) error
}

// AssociationService records user-to-opportunity relationships.
type AssociationService interface {
	Create(ctx context.Context, association models.Association) (models.Association, error)
}
