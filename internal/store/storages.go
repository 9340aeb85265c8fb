package store

import "github.com/tapteam/tap-server/internal/logger"

// Storages aggregates all repositories over a single database handle.
type Storages struct {
	UserRepository        UserRepository
	ProviderRepository    ProviderRepository
	OpportunityRepository OpportunityRepository
	AssociationRepository AssociationRepository
	SessionRepository     SessionRepository

	db     *DB
	logger *logger.Logger
}

// NewStorages wires every repository to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return newStorages(db, db, logger)
}

// newStorages binds the repositories to q, which is either the pool itself
// or an open transaction (see WithTx).
func newStorages(db *DB, q Querier, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(q, logger),
		ProviderRepository:    NewProviderRepository(q, logger),
		OpportunityRepository: NewOpportunityRepository(q, logger),
		AssociationRepository: NewAssociationRepository(q, logger),
		SessionRepository:     NewSessionRepository(q, logger),
		db:                    db,
		logger:                logger,
	}
}
