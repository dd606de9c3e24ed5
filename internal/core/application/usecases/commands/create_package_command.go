package commands

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand represents a sender's request to post a package
// with an escrowed price. The sender is the authenticated caller supplied
// by the runtime, never taken from the request body.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID uint64
	sender    kernel.Principal
	recipient kernel.Principal
	price     uint64
	pickup    kernel.Address
	delivery  kernel.Address

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand validates and builds the command. The
// recipient/sender equality rule lives in the Package aggregate, not here.
func NewCreatePackageCommand(
	packageID uint64,
	sender kernel.Principal,
	recipient kernel.Principal,
	price uint64,
	pickup kernel.Address,
	delivery kernel.Address,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if packageID == 0 {
		return CreatePackageCommand{}, errs.NewValueIsInvalidError("package id")
	}
	if err := errors.Join(
		sender.Validate(),
		recipient.Validate(),
		pickup.Validate(),
		delivery.Validate(),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	cmd.packageID = packageID
	cmd.sender = sender
	cmd.recipient = recipient
	cmd.price = price
	cmd.pickup = pickup
	cmd.delivery = delivery
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// PackageID returns the caller-supplied package identifier.
func (c CreatePackageCommand) PackageID() uint64 {
	return c.packageID
}

// Sender returns the authenticated caller posting the package.
func (c CreatePackageCommand) Sender() kernel.Principal {
	return c.sender
}

// Recipient returns the principal designated to receive the package.
func (c CreatePackageCommand) Recipient() kernel.Principal {
	return c.recipient
}

// Price returns the amount to escrow.
func (c CreatePackageCommand) Price() uint64 {
	return c.price
}

// Pickup returns the pickup location.
func (c CreatePackageCommand) Pickup() kernel.Address {
	return c.pickup
}

// Delivery returns the delivery location.
func (c CreatePackageCommand) Delivery() kernel.Address {
	return c.delivery
}
