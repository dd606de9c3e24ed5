package commands

import (
	"context"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/services"
)

// CompleteDeliveryCommandHandler transitions an accepted package to
// Delivered and pays the escrowed price out to the courier. The transition
// and the payout share one transaction; a failed transfer leaves the
// package accepted and the funds held.
type CompleteDeliveryCommandHandler struct {
	uowFactory EscrowUoWFactory
	escrow     services.EscrowAccounting
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory EscrowUoWFactory, escrow services.EscrowAccounting,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		escrow:     escrow,
	}
}

// Handle processes the completion command. Fails with PackageNotFound for
// an unknown id, InvalidState before acceptance, NotAuthorized when the
// caller is not the assigned courier, and NothingEscrowed if the funds were
// already settled.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()

	pkg, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if err = pkg.Complete(cmd.Caller()); err != nil {
		return err
	}

	if err = h.escrow.Release(ctx, uow.Ledger(), pkg, cmd.Caller()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
