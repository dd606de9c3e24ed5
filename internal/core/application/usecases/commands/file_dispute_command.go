package commands

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/dispute"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrFileDisputeCommandIsNotConstructed = errors.New(
	"FileDisputeCommand must be created via NewFileDisputeCommand constructor",
)

// FileDisputeCommand represents the sender or recipient contesting a
// package's handling. Filing freezes the package and its escrowed funds.
type FileDisputeCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	packageID uint64
	reason    string

	guard guard.ConstructorGuard
}

// NewFileDisputeCommand validates and builds the command.
func NewFileDisputeCommand(caller kernel.Principal, packageID uint64, reason string) (FileDisputeCommand, error) {
	if err := caller.Validate(); err != nil {
		return FileDisputeCommand{}, err
	}
	if packageID == 0 {
		return FileDisputeCommand{}, errs.NewValueIsInvalidError("package id")
	}
	if reason == "" {
		return FileDisputeCommand{}, errs.NewValueIsRequiredError("reason")
	}
	if len(reason) > dispute.ReasonMaxLen {
		return FileDisputeCommand{}, errs.NewValueIsOutOfRangeError("reason length", len(reason), 1, dispute.ReasonMaxLen)
	}

	return FileDisputeCommand{
		caller:    caller,
		packageID: packageID,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FileDisputeCommand) Validate() error {
	return c.guard.Validate(ErrFileDisputeCommandIsNotConstructed)
}

// Caller returns the party filing the dispute.
func (c FileDisputeCommand) Caller() kernel.Principal {
	return c.caller
}

// PackageID returns the id of the disputed package.
func (c FileDisputeCommand) PackageID() uint64 {
	return c.packageID
}

// Reason returns the filer's free-text reason.
func (c FileDisputeCommand) Reason() string {
	return c.reason
}
