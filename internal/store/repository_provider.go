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

// providerRepository is the PostgreSQL-backed implementation of
// [ProviderRepository].
type providerRepository struct {
	logger *logger.Logger
	db     Querier
}

// NewProviderRepository constructs a [ProviderRepository] backed by the
// provided database handle and logger.
func NewProviderRepository(db Querier, logger *logger.Logger) ProviderRepository {
	logger.Debug().Msg("creating provider repository")
	return &providerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProvider persists a new provider and returns it with server-assigned
// fields (ID, timestamps).
//
// Error handling:
//   - foreign_key_violation (contributor names no user) → [ErrInvalidReference].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *providerRepository) CreateProvider(ctx context.Context, provider models.Provider) (models.Provider, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProvider,
		provider.Name, provider.Status, provider.Contributor, provider.Trail,
		nullString(provider.URL), nullString(provider.Note))

	created, err := scanProvider(row)
	if err != nil {
		log.Err(err).Str("func", "*providerRepository.CreateProvider").Msg("error: creating provider failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Provider{}, ErrInvalidReference
		case "":
			return models.Provider{}, err
		default:
			return models.Provider{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetProvider retrieves a single provider by primary key.
// Returns [ErrRecordNotFound] when the id matches no row.
func (r *providerRepository) GetProvider(ctx context.Context, id int64) (models.Provider, error) {
	log := logger.FromContext(ctx)

	provider, err := scanProvider(r.db.QueryRowContext(ctx, getProvider, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Provider{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*providerRepository.GetProvider").Msg("error: provider lookup failed")
		return models.Provider{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return provider, nil
}

// ListProviders returns one page of providers ordered by id, plus the total
// row count.
func (r *providerRepository) ListProviders(ctx context.Context, limit, offset uint64) ([]models.Provider, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "name", "status", "contributor", "trail", "url", "note", "created_at", "modified_at").
		From("provider").
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*providerRepository.ListProviders").Msg("error: listing providers failed")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	providers := make([]models.Provider, 0, limit)
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, 0, err
		}
		providers = append(providers, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := countRows(ctx, r.db, "provider")
	if err != nil {
		return nil, 0, err
	}

	return providers, total, nil
}

// UpdateProvider applies the non-nil fields of update to the provider row
// and returns the refreshed record. modified_at is bumped on every update.
func (r *providerRepository) UpdateProvider(ctx context.Context, id int64, update models.ProviderUpdate) (models.Provider, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update("provider").Set("modified_at", sq.Expr("NOW()"))
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.URL != nil {
		builder = builder.Set("url", nullString(*update.URL))
	}
	if update.Note != nil {
		builder = builder.Set("note", nullString(*update.Note))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, status, contributor, trail, url, note, created_at, modified_at").
		ToSql()
	if err != nil {
		return models.Provider{}, fmt.Errorf("error building sql query: %w", err)
	}

	provider, err := scanProvider(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Provider{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*providerRepository.UpdateProvider").Msg("error: updating provider failed")
		return models.Provider{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return provider, nil
}

// DeleteProvider removes the provider row.
// Returns [ErrRecordNotFound] when the id matches no row.
func (r *providerRepository) DeleteProvider(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProvider, id)
	if err != nil {
		log.Err(err).Str("func", "*providerRepository.DeleteProvider").Msg("error: deleting provider failed")
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

func scanProvider(row rowScanner) (models.Provider, error) {
	var provider models.Provider
	var url, note sql.NullString

	err := row.Scan(&provider.ID, &provider.Name, &provider.Status, &provider.Contributor,
		&provider.Trail, &url, &note, &provider.CreatedAt, &provider.ModifiedAt)
	if err != nil {
		return models.Provider{}, err
	}

	provider.URL = url.String
	provider.Note = note.String
	return provider, nil
}

// nullString maps "" to SQL NULL so optional text columns stay NULL instead
// of collecting empty strings.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
