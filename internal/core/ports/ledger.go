package ports

import (
	"context"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
)

// Ledger is the balance-transfer primitive of the runtime collaborator.
// Implementations must be transactional with the repositories of the same
// unit of work: a failed transfer aborts the whole operation and a failed
// operation reverts the transfer.
//
// Transfer fails with InsufficientFunds when the debited account cannot
// cover the amount, and with TransferFailed for any other fault; the two
// are never conflated.
type Ledger interface {
	// Transfer atomically moves amount from one account to another.
	Transfer(ctx context.Context, from, to kernel.Principal, amount uint64) error

	// Credit mints amount onto an account. It exists for bootstrap and
	// test funding, not for lifecycle operations.
	Credit(ctx context.Context, to kernel.Principal, amount uint64) error

	// Balance returns the spendable balance of an account. Accounts that
	// never transacted have balance zero.
	Balance(ctx context.Context, principal kernel.Principal) (uint64, error)
}
