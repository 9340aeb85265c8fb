package service

import (
	"context"
	"fmt"

	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/internal/store"
	"github.com/tapteam/tap-server/models"
)

// associationService is the concrete implementation of AssociationService.
type associationService struct {
	associationRepository store.AssociationRepository
	logger                *logger.Logger
}

// NewAssociationService constructs an AssociationService bound to the
// association repository.
func NewAssociationService(storages *store.Storages, logger *logger.Logger) AssociationService {
	return &associationService{
		associationRepository: storages.AssociationRepository,
		logger:                logger,
	}
}

// Create records a relationship between a user and an opportunity. The type
// defaults to "associated". A second relationship for the same pair yields
// store.ErrAssociationAlreadyExists; ids naming missing rows yield
// store.ErrInvalidReference.
func (a *associationService) Create(ctx context.Context, association models.Association) (models.Association, error) {
	log := logger.FromContext(ctx)

	if association.OpportunityID == 0 || association.UserID == 0 {
		log.Error().Msg("association create payload incomplete")
		return models.Association{}, ErrInvalidDataProvided
	}

	if association.Type == "" {
		association.Type = models.AssociationAssociated
	}
	if !association.ValidType() {
		log.Error().Str("type", association.Type).Msg("unknown association type")
		return models.Association{}, ErrInvalidDataProvided
	}

	created, err := a.associationRepository.CreateAssociation(ctx, association)
	if err != nil {
		log.Err(err).
			Int64("opportunity_id", association.OpportunityID).
			Int64("user_id", association.UserID).
			Msg("association create failed")
		return models.Association{}, fmt.Errorf("association create failed: %w", err)
	}

	log.Info().
		Int64("opportunity_id", created.OpportunityID).
		Int64("user_id", created.UserID).
		Str("type", created.Type).
		Msg("association created")
	return created, nil
}
