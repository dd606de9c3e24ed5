package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/ports"
)

// EscrowAuditJob periodically checks the escrow conservation invariant:
// the pool account balance must equal the sum of prices of all packages
// whose escrow is still held. A mismatch means a settlement committed
// without its ledger movement, which is a bug and never self-heals.
type EscrowAuditJob struct {
	db     *gorm.DB
	ledger ports.Ledger
	pool   kernel.Principal
	cron   *cron.Cron
	logger zerolog.Logger
}

// NewEscrowAuditJob creates a job auditing the escrow pool every minute.
func NewEscrowAuditJob(db *gorm.DB, ledger ports.Ledger, pool kernel.Principal, logger zerolog.Logger) *EscrowAuditJob {
	return &EscrowAuditJob{
		db:     db,
		ledger: ledger,
		pool:   pool,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With().Str("component", "escrow_audit_job").Logger(),
	}
}

// Start begins the escrow audit job to run once per minute.
func (j *EscrowAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.Audit(ctx); err != nil {
			j.logger.Error().Err(err).Msg("escrow audit failed")
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Msg("escrow audit job started (running every minute)")
	return nil
}

// Stop stops the escrow audit job.
func (j *EscrowAuditJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("escrow audit job stopped")
}

// Audit runs one conservation check. Exposed so the check can run on demand.
func (j *EscrowAuditJob) Audit(ctx context.Context) error {
	var held uint64
	row := j.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(price), 0) FROM packages WHERE escrow = ?
	`, int(parcel.EscrowHeld)).Row()
	if err := row.Scan(&held); err != nil {
		return err
	}

	balance, err := j.ledger.Balance(ctx, j.pool)
	if err != nil {
		return err
	}

	if balance != held {
		j.logger.Error().
			Uint64("pool_balance", balance).
			Uint64("escrow_held", held).
			Msg("escrow conservation violated")
	}
	return nil
}
