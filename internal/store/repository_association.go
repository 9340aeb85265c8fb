package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/models"
)

// associationRepository is the PostgreSQL-backed implementation of
// [AssociationRepository].
type associationRepository struct {
	logger *logger.Logger
	db     Querier
}

// NewAssociationRepository constructs an [AssociationRepository] backed by
// the provided database handle and logger.
func NewAssociationRepository(db Querier, logger *logger.Logger) AssociationRepository {
	logger.Debug().Msg("creating association repository")
	return &associationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAssociation persists a user-to-opportunity relationship.
//
// Error handling:
//   - unique_violation on the composite key → [ErrAssociationAlreadyExists];
//     a user holds at most one relationship per opportunity.
//   - foreign_key_violation → [ErrInvalidReference].
func (r *associationRepository) CreateAssociation(ctx context.Context, association models.Association) (models.Association, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAssociation,
		association.OpportunityID, association.UserID, association.Type)

	var created models.Association
	if err := row.Scan(&created.OpportunityID, &created.UserID, &created.Type); err != nil {
		log.Err(err).Str("func", "*associationRepository.CreateAssociation").Msg("error: creating association failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Association{}, ErrAssociationAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Association{}, ErrInvalidReference
		case "":
			return models.Association{}, err
		default:
			return models.Association{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// AssociationsOf returns all relationships attached to an opportunity.
func (r *associationRepository) AssociationsOf(ctx context.Context, opportunityID int64) ([]models.Association, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, associationsOfOpportunity, opportunityID)
	if err != nil {
		log.Err(err).Str("func", "*associationRepository.AssociationsOf").Msg("error: listing associations failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var associations []models.Association
	for rows.Next() {
		var association models.Association
		if err := rows.Scan(&association.OpportunityID, &association.UserID, &association.Type); err != nil {
			return nil, err
		}
		associations = append(associations, association)
	}

	return associations, rows.Err()
}
