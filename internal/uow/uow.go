// Package uow coordinates multi-repository writes in a single transaction
// and defers side effects (cache invalidation, notifications) until the
// commit has actually happened.
package uow

import (
	"context"

	"github.com/jackc/pgx/v5"

	postgres "github.com/oleksiirud/skyport/internal/repository/postgres"
)

// AfterCommit runs only once the surrounding transaction has committed.
// A hook cannot roll the transaction back.
type AfterCommit func(ctx context.Context)

type UoW struct {
	store *postgres.Store
}

func NewUoW(store *postgres.Store) *UoW {
	return &UoW{store: store}
}

// Do runs fn in a transaction at the store's default isolation. Hooks queued
// through after fire in order once the commit succeeds; none on rollback.
func (u *UoW) Do(
	ctx context.Context,
	fn func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error,
) error {
	return u.DoWithOpts(ctx, nil, fn)
}

// DoWithOpts is Do with explicit transaction options.
func (u *UoW) DoWithOpts(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error,
) error {
	var queued []AfterCommit
	enqueue := func(h AfterCommit) {
		queued = append(queued, h)
	}

	if err := u.store.RunTx(ctx, opts, func(ctx context.Context, tx postgres.DB) error {
		return fn(ctx, tx, enqueue)
	}); err != nil {
		return err
	}

	for _, hook := range queued {
		hook(ctx)
	}

	return nil
}
