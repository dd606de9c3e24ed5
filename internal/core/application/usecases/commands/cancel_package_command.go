package commands

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrCancelPackageCommandIsNotConstructed = errors.New(
	"CancelPackageCommand must be created via NewCancelPackageCommand constructor",
)

// CancelPackageCommand represents the sender withdrawing a package that no
// courier has accepted yet, which refunds the escrowed price.
type CancelPackageCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	packageID uint64

	guard guard.ConstructorGuard
}

// NewCancelPackageCommand validates and builds the command.
func NewCancelPackageCommand(caller kernel.Principal, packageID uint64) (CancelPackageCommand, error) {
	if err := caller.Validate(); err != nil {
		return CancelPackageCommand{}, err
	}
	if packageID == 0 {
		return CancelPackageCommand{}, errs.NewValueIsInvalidError("package id")
	}

	return CancelPackageCommand{
		caller:    caller,
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPackageCommand) Validate() error {
	return c.guard.Validate(ErrCancelPackageCommandIsNotConstructed)
}

// Caller returns the sender cancelling the package.
func (c CancelPackageCommand) Caller() kernel.Principal {
	return c.caller
}

// PackageID returns the id of the package to cancel.
func (c CancelPackageCommand) PackageID() uint64 {
	return c.packageID
}
