package commands

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrUpdatePackageLocationCommandIsNotConstructed = errors.New(
	"UpdatePackageLocationCommand must be created via NewUpdatePackageLocationCommand constructor",
)

// UpdatePackageLocationCommand represents the assigned courier reporting a
// package's current location while it is in transit.
type UpdatePackageLocationCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	packageID uint64
	location  kernel.Address

	guard guard.ConstructorGuard
}

// NewUpdatePackageLocationCommand validates and builds the command.
func NewUpdatePackageLocationCommand(
	caller kernel.Principal, packageID uint64, location kernel.Address,
) (UpdatePackageLocationCommand, error) {
	if err := caller.Validate(); err != nil {
		return UpdatePackageLocationCommand{}, err
	}
	if packageID == 0 {
		return UpdatePackageLocationCommand{}, errs.NewValueIsInvalidError("package id")
	}
	if err := location.Validate(); err != nil {
		return UpdatePackageLocationCommand{}, err
	}

	return UpdatePackageLocationCommand{
		caller:    caller,
		packageID: packageID,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePackageLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageLocationCommandIsNotConstructed)
}

// Caller returns the courier reporting the location.
func (c UpdatePackageLocationCommand) Caller() kernel.Principal {
	return c.caller
}

// PackageID returns the id of the package being tracked.
func (c UpdatePackageLocationCommand) PackageID() uint64 {
	return c.packageID
}

// Location returns the reported current location.
func (c UpdatePackageLocationCommand) Location() kernel.Address {
	return c.location
}
