package commands

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the assigned courier marking a package
// as delivered, which releases the escrowed payment to them.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	packageID uint64

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand validates and builds the command.
func NewCompleteDeliveryCommand(caller kernel.Principal, packageID uint64) (CompleteDeliveryCommand, error) {
	if err := caller.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	if packageID == 0 {
		return CompleteDeliveryCommand{}, errs.NewValueIsInvalidError("package id")
	}

	return CompleteDeliveryCommand{
		caller:    caller,
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// Caller returns the courier completing the delivery.
func (c CompleteDeliveryCommand) Caller() kernel.Principal {
	return c.caller
}

// PackageID returns the id of the package being delivered.
func (c CompleteDeliveryCommand) PackageID() uint64 {
	return c.packageID
}
