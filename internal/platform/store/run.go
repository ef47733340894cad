package store

import "context"

// InTx runs fn inside one transaction of tx, handing it both ctx and the tx querier
func InTx(ctx context.Context, tx TxRunner, fn func(ctx context.Context, q RowQuerier) error) error {
	return tx.Tx(ctx, func(q RowQuerier) error { return fn(ctx, q) })
}
