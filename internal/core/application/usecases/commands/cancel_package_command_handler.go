package commands

import (
	"context"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/services"
)

// CancelPackageCommandHandler cancels a still-unaccepted package and
// refunds the escrowed price to the sender in the same transaction.
type CancelPackageCommandHandler struct {
	uowFactory EscrowUoWFactory
	escrow     services.EscrowAccounting
}

// NewCancelPackageCommandHandler creates a handler for package cancellation.
func NewCancelPackageCommandHandler(
	uowFactory EscrowUoWFactory, escrow services.EscrowAccounting,
) CancelPackageCommandHandler {
	return CancelPackageCommandHandler{
		uowFactory: uowFactory,
		escrow:     escrow,
	}
}

// Handle processes the cancellation command. Fails with PackageNotFound for
// an unknown id, NotAuthorized when the caller is not the sender, and
// InvalidState once a courier accepted the package.
func (h CancelPackageCommandHandler) Handle(ctx context.Context, cmd CancelPackageCommand) error {
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

	if err = pkg.Cancel(cmd.Caller()); err != nil {
		return err
	}

	if err = h.escrow.Refund(ctx, uow.Ledger(), pkg); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
