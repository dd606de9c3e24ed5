// Package ledgerrepo implements the account ledger over a postgres table.
// Transfers run inside the unit of work's transaction, so escrow movements
// and aggregate writes commit atomically.
package ledgerrepo

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// AccountDTO represents the database structure of a spendable balance.
// Accounts are created lazily on first credit; absence means balance zero.
type AccountDTO struct {
	Principal string `gorm:"type:varchar(128);primaryKey"`
	Balance   uint64
}

// TableName overrides GORM's default naming to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

// GormLedger implements the Ledger port using GORM. The debit side of a
// transfer is a conditional UPDATE guarded by the current balance, which
// doubles as the row lock ordering transfers against each other.
type GormLedger struct {
	db *gorm.DB
}

// NewGormLedger creates a ledger bound to the given connection. Pass the
// transaction handle from the unit of work, never the base connection, for
// lifecycle operations.
func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

// Transfer atomically moves amount between two accounts. Fails with
// InsufficientFunds when the debited account cannot cover the amount, and
// with TransferFailed on any storage fault. A zero amount still requires
// the source account to exist through a prior credit.
func (l *GormLedger) Transfer(ctx context.Context, from, to kernel.Principal, amount uint64) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	debit := l.db.WithContext(ctx).Exec(`
		UPDATE accounts
		SET balance = balance - ?
		WHERE principal = ? AND balance >= ?
	`, amount, from.String(), amount)
	if debit.Error != nil {
		return errs.NewTransferFailedError(debit.Error)
	}
	if debit.RowsAffected == 0 {
		return errs.NewInsufficientFundsError(from.String(), amount)
	}

	if err := l.credit(ctx, to, amount); err != nil {
		return errs.NewTransferFailedError(err)
	}

	return nil
}

// Credit mints amount onto an account, creating it if needed. Exists for
// bootstrap and test funding.
func (l *GormLedger) Credit(ctx context.Context, to kernel.Principal, amount uint64) error {
	if err := to.Validate(); err != nil {
		return err
	}
	return l.credit(ctx, to, amount)
}

func (l *GormLedger) credit(ctx context.Context, to kernel.Principal, amount uint64) error {
	return l.db.WithContext(ctx).Exec(`
		INSERT INTO accounts (principal, balance)
		VALUES (?, ?)
		ON CONFLICT (principal) DO UPDATE
		SET balance = accounts.balance + excluded.balance
	`, to.String(), amount).Error
}

// Balance returns the spendable balance of an account. Accounts that never
// transacted have balance zero.
func (l *GormLedger) Balance(ctx context.Context, principal kernel.Principal) (uint64, error) {
	if err := principal.Validate(); err != nil {
		return 0, err
	}

	var balance uint64
	row := l.db.WithContext(ctx).Raw(`
		SELECT balance FROM accounts WHERE principal = ?
	`, principal.String()).Row()

	err := row.Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}
