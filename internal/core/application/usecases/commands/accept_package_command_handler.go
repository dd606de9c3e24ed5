package commands

import (
	"context"
)

// AcceptPackageCommandHandler assigns a posted package to the calling
// courier. The package lookup comes first: without a record there is
// nothing to authorize against, so a missing id surfaces PackageNotFound
// even to unregistered callers.
type AcceptPackageCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptPackageCommandHandler creates a handler for package acceptance.
func NewAcceptPackageCommandHandler(uowFactory UoWFactory) AcceptPackageCommandHandler {
	return AcceptPackageCommandHandler{uowFactory: uowFactory}
}

// Handle processes the acceptance command. Fails with PackageNotFound for
// an unknown id, CourierNotRegistered when the caller has no courier
// record, and InvalidState when the package already left Created.
func (h AcceptPackageCommandHandler) Handle(ctx context.Context, cmd AcceptPackageCommand) error {
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

	pkg, err := uow.PackageRepository().Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if _, err = uow.CourierRepository().Get(ctx, cmd.Caller()); err != nil {
		return err
	}

	if err = pkg.Accept(cmd.Caller()); err != nil {
		return err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
