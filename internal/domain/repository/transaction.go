package repository

import "context"

// TxManager runs fn inside a single database transaction. Repository calls
// made with the context passed to fn join that transaction. The transaction
// commits when fn returns nil and rolls back on any error or panic.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
