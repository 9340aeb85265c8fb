package store

import (
	"context"
	"database/sql"
)

// Querier is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface, which is what lets a
// repository run either directly on the pool or inside a request-scoped
// transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn against a Storages set bound to it,
// and commits on success or rolls back on error/panic. Panics are rethrown.
//
// This is the unit of work for mutating requests: no partial writes become
// visible to concurrent requests before commit.
//
// Typical use:
//
//	err := s.storages.WithTx(ctx, func(tx *store.Storages) error {
//	    _, err := tx.OpportunityRepository.CreateOpportunity(ctx, opp)
//	    return err
//	})
func (s *Storages) WithTx(ctx context.Context, fn func(tx *Storages) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(newStorages(s.db, tx, s.logger))
	return err
}
