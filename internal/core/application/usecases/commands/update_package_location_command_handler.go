package commands

import (
	"context"
)

// UpdatePackageLocationCommandHandler records the current location reported
// by the package's assigned courier.
type UpdatePackageLocationCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewUpdatePackageLocationCommandHandler creates a handler for location updates.
func NewUpdatePackageLocationCommandHandler(uowFactory PackageUoWFactory) UpdatePackageLocationCommandHandler {
	return UpdatePackageLocationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the location update. Fails with PackageNotFound for an
// unknown id, InvalidState before acceptance, NotAuthorized when the caller
// is not the assigned courier, and InvalidState again once the package
// reaches a settled or disputed status.
func (h UpdatePackageLocationCommandHandler) Handle(ctx context.Context, cmd UpdatePackageLocationCommand) error {
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

	if err = pkg.UpdateLocation(cmd.Caller(), cmd.Location()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
