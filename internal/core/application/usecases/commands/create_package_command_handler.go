package commands

import (
	"context"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/services"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// CreatePackageCommandHandler posts a new package and holds its price in
// escrow. Creation and the escrow hold commit together: if the sender
// cannot cover the price, no package is persisted.
type CreatePackageCommandHandler struct {
	uowFactory EscrowUoWFactory
	escrow     services.EscrowAccounting
}

// NewCreatePackageCommandHandler creates a handler for package creation.
func NewCreatePackageCommandHandler(uowFactory EscrowUoWFactory, escrow services.EscrowAccounting) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		escrow:     escrow,
	}
}

// Handle processes the creation command. Fails with DuplicatePackageID
// when the id was ever used, InvalidAddress when the recipient equals the
// sender, and InsufficientFunds when the escrow hold cannot be covered.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) error {
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

	taken, err := packageRepo.Exists(ctx, cmd.PackageID())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewDuplicatePackageIDError(cmd.PackageID())
	}

	pkg, err := parcel.NewPackage(
		cmd.PackageID(),
		cmd.Sender(),
		cmd.Recipient(),
		cmd.Price(),
		cmd.Pickup(),
		cmd.Delivery(),
	)
	if err != nil {
		return err
	}

	if err = h.escrow.Hold(ctx, uow.Ledger(), pkg); err != nil {
		return err
	}

	if err = packageRepo.Add(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
