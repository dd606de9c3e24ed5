package commands

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/courier"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a caller's request to register as a
// courier under their own principal.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Principal
	name   string

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand validates and builds the command.
func NewRegisterCourierCommand(caller kernel.Principal, name string) (RegisterCourierCommand, error) {
	if err := caller.Validate(); err != nil {
		return RegisterCourierCommand{}, err
	}
	if name == "" {
		return RegisterCourierCommand{}, errs.NewValueIsRequiredError("name")
	}
	if len(name) > courier.NameMaxLen {
		return RegisterCourierCommand{}, errs.NewValueIsOutOfRangeError("name length", len(name), 1, courier.NameMaxLen)
	}

	return RegisterCourierCommand{
		caller: caller,
		name:   name,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// Caller returns the principal registering as a courier.
func (c RegisterCourierCommand) Caller() kernel.Principal {
	return c.caller
}

// Name returns the courier's display name.
func (c RegisterCourierCommand) Name() string {
	return c.name
}
