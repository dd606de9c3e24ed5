// Package commands contains the business operations that modify system
// state, one command/handler pair per external operation. Every handler
// follows the same shape: validate the command, open a unit of work,
// mutate aggregates through their guarded methods, and commit. On any
// failure the deferred rollback discards all effects, including ledger
// transfers; there is no partial success.
package commands

import (
	"context"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest composite covering the
// repositories they touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory provides the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// CourierRepoFactory provides the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// DisputeRepoFactory provides the dispute repository within a transaction.
	DisputeRepoFactory interface {
		DisputeRepository() ports.DisputeRepository
	}

	// LedgerFactory provides the balance-transfer primitive within a transaction.
	LedgerFactory interface {
		Ledger() ports.Ledger
	}

	// PackageUoW manages transactions for package-only operations
	// (location updates).
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// CourierUoW manages transactions for courier-only operations
	// (registration, ratings).
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// EscrowUoW manages transactions for operations that settle or hold
	// escrow alongside a package transition (create, complete, cancel).
	EscrowUoW interface {
		TxManager
		PackageRepoFactory
		LedgerFactory
	}

	// EscrowUoWFactory creates escrow unit of work instances.
	EscrowUoWFactory interface {
		Create() EscrowUoW
	}

	// DisputeUoW manages transactions for dispute filing, which writes the
	// package and the dispute record together.
	DisputeUoW interface {
		TxManager
		PackageRepoFactory
		DisputeRepoFactory
	}

	// DisputeUoWFactory creates dispute unit of work instances.
	DisputeUoWFactory interface {
		Create() DisputeUoW
	}

	// UoW manages transactions across package and courier aggregates
	// (acceptance checks courier registration before assigning).
	UoW interface {
		TxManager
		PackageRepoFactory
		CourierRepoFactory
	}

	// UoWFactory creates cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
