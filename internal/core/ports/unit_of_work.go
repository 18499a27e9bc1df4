package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command so concurrent
// operations stay isolated.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// Repository accessors are bound to the transaction started by Begin, or
	// to the plain connection when no transaction is open.
	CourierRepository() CourierRepository
	OfferRepository() OfferRepository
	PaymentRepository() PaymentRepository
	EarningsRepository() EarningsRepository
	LocationRepository() LocationRepository
}
