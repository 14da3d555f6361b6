package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command, ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code
// manages the transaction lifecycle explicitly: Begin, then Commit or
// Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer after a
	// successful commit.
	Rollback(ctx context.Context) error

	// DeliveryRepository returns a DeliveryRepository bound to the current
	// transaction.
	DeliveryRepository() DeliveryRepository

	// VendorRepository returns a VendorRepository bound to the current
	// transaction.
	VendorRepository() VendorRepository
}
