package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances, one per operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a single operation. Every
// lifecycle command runs inside exactly one unit of work: the state
// transition, the registry update and the escrow transfer all commit
// together or not at all. There is no partial success.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer after a
	// commit; rolling back a finished transaction is a no-op error.
	Rollback(ctx context.Context) error

	// PackageRepository returns a repository bound to the current transaction.
	PackageRepository() PackageRepository

	// CourierRepository returns a repository bound to the current transaction.
	CourierRepository() CourierRepository

	// DisputeRepository returns a repository bound to the current transaction.
	DisputeRepository() DisputeRepository

	// Ledger returns the balance-transfer primitive bound to the current
	// transaction.
	Ledger() Ledger
}
