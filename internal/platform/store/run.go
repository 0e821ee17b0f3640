package store

import "context"

// RunForOwner wraps ctx with the owner id and calls fn inside the provided TxRunner
func RunForOwner(ctx context.Context, tx TxRunner, ownerID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithOwner(ctx, ownerID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
