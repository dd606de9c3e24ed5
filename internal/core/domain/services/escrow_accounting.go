package services

import (
	"context"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/ports"
)

// EscrowAccounting moves funds between the parties of a package and the
// escrow pool, keeping the aggregate's settlement state and the ledger in
// step. All three operations must run inside the unit of work of the
// lifecycle transition that triggers them, so the conservation invariant
// holds at every commit point:
//
//	sum(held) == sum(released) + sum(refunded) + pool balance
//
// The pool is a single service-owned account; the per-package association
// of held funds lives on the Package aggregate (price + escrow state).
type EscrowAccounting struct {
	pool kernel.Principal
}

// NewEscrowAccounting creates the accounting service around the pool
// account that holds all escrowed funds.
func NewEscrowAccounting(pool kernel.Principal) (EscrowAccounting, error) {
	if err := pool.Validate(); err != nil {
		return EscrowAccounting{}, err
	}
	return EscrowAccounting{pool: pool}, nil
}

// Pool returns the principal of the escrow pool account.
func (ea EscrowAccounting) Pool() kernel.Principal {
	return ea.pool
}

// Hold debits the sender's spendable balance by the package price into the
// pool. Fails with InsufficientFunds when the sender cannot cover the
// price; the caller must then abort package creation.
func (ea EscrowAccounting) Hold(ctx context.Context, ledger ports.Ledger, pkg *parcel.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	return ledger.Transfer(ctx, pkg.Sender(), ea.pool, pkg.Price())
}

// Release pays the held price out of the pool to the courier on delivery.
// The aggregate is marked released before the transfer, so a second
// settlement attempt fails with NothingEscrowed regardless of ledger
// state; a failed transfer rolls the mark back with the transaction.
func (ea EscrowAccounting) Release(ctx context.Context, ledger ports.Ledger, pkg *parcel.Package, to kernel.Principal) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if err := pkg.MarkEscrowReleased(); err != nil {
		return err
	}
	return ledger.Transfer(ctx, ea.pool, to, pkg.Price())
}

// Refund returns the held price from the pool to the sender on
// cancellation. Symmetric to Release; a package can never be both released
// and refunded.
func (ea EscrowAccounting) Refund(ctx context.Context, ledger ports.Ledger, pkg *parcel.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	if err := pkg.MarkEscrowRefunded(); err != nil {
		return err
	}
	return ledger.Transfer(ctx, ea.pool, pkg.Sender(), pkg.Price())
}
