package store

import (
	"context"

	"github.com/tapteam/tap-server/models"
)

// UserRepository handles persistence of user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, int64, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	// FindUserByCredentials returns the user whose username and stored
	// password digest both match, or ErrNoUserWasFound when zero rows match.
	FindUserByCredentials(ctx context.Context, username, digest string) (models.User, error)
}

// ProviderRepository handles persistence of providers.
type ProviderRepository interface {
	CreateProvider(ctx context.Context, provider models.Provider) (models.Provider, error)
	GetProvider(ctx context.Context, id int64) (models.Provider, error)
	ListProviders(ctx context.Context, limit, offset uint64) ([]models.Provider, int64, error)
	UpdateProvider(ctx context.Context, id int64, update models.ProviderUpdate) (models.Provider, error)
	DeleteProvider(ctx context.Context, id int64) error
}

// OpportunityRepository handles persistence of opportunities and their
// many-to-many links to providers.
type OpportunityRepository interface {
	CreateOpportunity(ctx context.Context, opportunity models.Opportunity) (models.Opportunity, error)
	GetOpportunity(ctx context.Context, id int64) (models.Opportunity, error)
	ListOpportunities(ctx context.Context, limit, offset uint64) ([]models.Opportunity, int64, error)
	UpdateOpportunity(ctx context.Context, id int64, update models.OpportunityUpdate) (models.Opportunity, error)
	DeleteOpportunity(ctx context.Context, id int64) error

	LinkProvider(ctx context.Context, opportunityID, providerID int64) error
	UnlinkProvider(ctx context.Context, opportunityID, providerID int64) error
	ProvidersOf(ctx context.Context, opportunityID int64) ([]models.Provider, error)
}

// AssociationRepository handles user-to-opportunity relationships.
type AssociationRepository interface {
	CreateAssociation(ctx context.Context, association models.Association) (models.Association, error)
	AssociationsOf(ctx context.Context, opportunityID int64) ([]models.Association, error)
}

// SessionRepository handles login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// FindSessionByToken returns the session carrying the given token, or
	// ErrSessionNotFound. Tokens are unique and immutable once issued.
	FindSessionByToken(ctx context.Context, token string) (models.Session, error)
}
