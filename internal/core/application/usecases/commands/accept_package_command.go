package commands

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrAcceptPackageCommandIsNotConstructed = errors.New(
	"AcceptPackageCommand must be created via NewAcceptPackageCommand constructor",
)

// AcceptPackageCommand represents a registered courier's request to take a
// posted package.
type AcceptPackageCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	packageID uint64

	guard guard.ConstructorGuard
}

// NewAcceptPackageCommand validates and builds the command.
func NewAcceptPackageCommand(caller kernel.Principal, packageID uint64) (AcceptPackageCommand, error) {
	if err := caller.Validate(); err != nil {
		return AcceptPackageCommand{}, err
	}
	if packageID == 0 {
		return AcceptPackageCommand{}, errs.NewValueIsInvalidError("package id")
	}

	return AcceptPackageCommand{
		caller:    caller,
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptPackageCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPackageCommandIsNotConstructed)
}

// Caller returns the courier accepting the package.
func (c AcceptPackageCommand) Caller() kernel.Principal {
	return c.caller
}

// PackageID returns the id of the package to accept.
func (c AcceptPackageCommand) PackageID() uint64 {
	return c.packageID
}
