package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/tapteam/tap-server/internal/logger"
	"github.com/tapteam/tap-server/models"
)

// opportunityRepository is the PostgreSQL-backed implementation of
// [OpportunityRepository]. Besides the opportunity table itself it owns the
// opportunity_provider join table.
type opportunityRepository struct {
	logger *logger.Logger
	db     Querier
}

// NewOpportunityRepository constructs an [OpportunityRepository] backed by
// the provided database handle and logger.
func NewOpportunityRepository(db Querier, logger *logger.Logger) OpportunityRepository {
	logger.Debug().Msg("creating opportunity repository")
	return &opportunityRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOpportunity persists a new opportunity and returns it with
// server-assigned fields (ID, timestamps).
//
// Error handling:
//   - foreign_key_violation (contributor names no user) → [ErrInvalidReference].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *opportunityRepository) CreateOpportunity(ctx context.Context, opportunity models.Opportunity) (models.Opportunity, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createOpportunity,
		opportunity.Name, opportunity.Status, opportunity.Contributor, opportunity.Trail,
		nullString(opportunity.URL), opportunity.Amount, opportunity.AmountPer, nullString(opportunity.Note))

	created, err := scanOpportunity(row)
	if err != nil {
		log.Err(err).Str("func", "*opportunityRepository.CreateOpportunity").Msg("error: creating opportunity failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Opportunity{}, ErrInvalidReference
		case "":
			return models.Opportunity{}, err
		default:
			return models.Opportunity{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetOpportunity retrieves a single opportunity by primary key, including
// its linked providers and user associations.
// Returns [ErrRecordNotFound] when the id matches no row.
func (r *opportunityRepository) GetOpportunity(ctx context.Context, id int64) (models.Opportunity, error) {
	log := logger.FromContext(ctx)

	opportunity, err := scanOpportunity(r.db.QueryRowContext(ctx, getOpportunity, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Opportunity{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*opportunityRepository.GetOpportunity").Msg("error: opportunity lookup failed")
		return models.Opportunity{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	opportunity.Providers, err = r.ProvidersOf(ctx, id)
	if err != nil {
		return models.Opportunity{}, err
	}

	opportunity.Associations, err = r.associationsOf(ctx, id)
	if err != nil {
		return models.Opportunity{}, err
	}

	return opportunity, nil
}

// ListOpportunities returns one page of opportunities ordered by id, plus
// the total row count. Linked providers and associations are not expanded in
// list responses.
func (r *opportunityRepository) ListOpportunities(ctx context.Context, limit, offset uint64) ([]models.Opportunity, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "name", "status", "contributor", "trail", "url", "amount", "amount_per", "note", "created_at", "modified_at").
		From("opportunity").
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*opportunityRepository.ListOpportunities").Msg("error: listing opportunities failed")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	opportunities := make([]models.Opportunity, 0, limit)
	for rows.Next() {
		opportunity, err := scanOpportunity(rows)
		if err != nil {
			return nil, 0, err
		}
		opportunities = append(opportunities, opportunity)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := countRows(ctx, r.db, "opportunity")
	if err != nil {
		return nil, 0, err
	}

	return opportunities, total, nil
}

// UpdateOpportunity applies the non-nil fields of update to the opportunity
// row and returns the refreshed record. modified_at is bumped on every
// update.
func (r *opportunityRepository) UpdateOpportunity(ctx context.Context, id int64, update models.OpportunityUpdate) (models.Opportunity, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update("opportunity").Set("modified_at", sq.Expr("NOW()"))
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.URL != nil {
		builder = builder.Set("url", nullString(*update.URL))
	}
	if update.Amount != nil {
		builder = builder.Set("amount", *update.Amount)
	}
	if update.AmountPer != nil {
		builder = builder.Set("amount_per", *update.AmountPer)
	}
	if update.Note != nil {
		builder = builder.Set("note", nullString(*update.Note))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, status, contributor, trail, url, amount, amount_per, note, created_at, modified_at").
		ToSql()
	if err != nil {
		return models.Opportunity{}, fmt.Errorf("error building sql query: %w", err)
	}

	opportunity, err := scanOpportunity(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Opportunity{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*opportunityRepository.UpdateOpportunity").Msg("error: updating opportunity failed")
		return models.Opportunity{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return opportunity, nil
}

// DeleteOpportunity removes the opportunity row.
// Returns [ErrRecordNotFound] when the id matches no row.
func (r *opportunityRepository) DeleteOpportunity(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteOpportunity, id)
	if err != nil {
		log.Err(err).Str("func", "*opportunityRepository.DeleteOpportunity").Msg("error: deleting opportunity failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// LinkProvider attaches a provider to an opportunity through the join table.
//
// Error handling:
//   - unique_violation (already linked) → nil, the link is idempotent.
//   - foreign_key_violation → [ErrInvalidReference].
func (r *opportunityRepository) LinkProvider(ctx context.Context, opportunityID, providerID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, linkOpportunityProvider, opportunityID, providerID)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return nil
		case pgerrcode.ForeignKeyViolation:
			return ErrInvalidReference
		default:
			log.Err(err).Str("func", "*opportunityRepository.LinkProvider").Msg("error: linking provider failed")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// UnlinkProvider removes a provider link. Missing links are not an error.
func (r *opportunityRepository) UnlinkProvider(ctx context.Context, opportunityID, providerID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, unlinkOpportunityProvider, opportunityID, providerID)
	if err != nil {
		log.Err(err).Str("func", "*opportunityRepository.UnlinkProvider").Msg("error: unlinking provider failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ProvidersOf returns the providers linked to the given opportunity.
func (r *opportunityRepository) ProvidersOf(ctx context.Context, opportunityID int64) ([]models.Provider, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, providersOfOpportunity, opportunityID)
	if err != nil {
		log.Err(err).Str("func", "*opportunityRepository.ProvidersOf").Msg("error: loading linked providers failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var providers []models.Provider
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	return providers, rows.Err()
}

// associationsOf loads the user associations of an opportunity for embedding
// in single-record responses.
func (r *opportunityRepository) associationsOf(ctx context.Context, opportunityID int64) ([]models.Association, error) {
	rows, err := r.db.QueryContext(ctx, associationsOfOpportunity, opportunityID)
	if err != nil {
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

func scanOpportunity(row rowScanner) (models.Opportunity, error) {
	var opportunity models.Opportunity
	var url, note sql.NullString
	var amount sql.NullFloat64

	err := row.Scan(&opportunity.ID, &opportunity.Name, &opportunity.Status, &opportunity.Contributor,
		&opportunity.Trail, &url, &amount, &opportunity.AmountPer, &note,
		&opportunity.CreatedAt, &opportunity.ModifiedAt)
	if err != nil {
		return models.Opportunity{}, err
	}

	opportunity.URL = url.String
	opportunity.Note = note.String
	if amount.Valid {
		opportunity.Amount = &amount.Float64
	}
	return opportunity, nil
}
