package commands

import (
	"context"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/dispute"
)

// FileDisputeCommandHandler moves a package to Disputed and persists the
// dispute record in the same transaction. Disputed is terminal and a
// disputed package cannot be re-disputed, so at most one dispute ever
// exists per package.
type FileDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewFileDisputeCommandHandler creates a handler for dispute filing.
func NewFileDisputeCommandHandler(uowFactory DisputeUoWFactory) FileDisputeCommandHandler {
	return FileDisputeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the filing command. Fails with PackageNotFound for an
// unknown id, NotAuthorized when the caller is neither sender nor
// recipient, and InvalidState when the package is cancelled or already
// disputed.
func (h FileDisputeCommandHandler) Handle(ctx context.Context, cmd FileDisputeCommand) error {
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

	if err = pkg.Dispute(cmd.Caller()); err != nil {
		return err
	}

	newDispute, err := dispute.NewDispute(cmd.PackageID(), cmd.Caller(), cmd.Reason())
	if err != nil {
		return err
	}

	if err = uow.DisputeRepository().Add(ctx, newDispute); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
