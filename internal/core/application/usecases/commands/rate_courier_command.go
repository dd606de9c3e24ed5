package commands

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/courier"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrRateCourierCommandIsNotConstructed = errors.New(
	"RateCourierCommand must be created via NewRateCourierCommand constructor",
)

// RateCourierCommand represents a caller scoring a registered courier.
type RateCourierCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Principal
	courier kernel.Principal
	score   uint64

	guard guard.ConstructorGuard
}

// NewRateCourierCommand validates and builds the command. The score range
// is enforced here and again by the aggregate.
func NewRateCourierCommand(caller, target kernel.Principal, score uint64) (RateCourierCommand, error) {
	if err := caller.Validate(); err != nil {
		return RateCourierCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return RateCourierCommand{}, err
	}
	if score < courier.RatingMin || score > courier.RatingMax {
		return RateCourierCommand{}, errs.NewInvalidScoreError(score)
	}

	return RateCourierCommand{
		caller:  caller,
		courier: target,
		score:   score,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RateCourierCommand) Validate() error {
	return c.guard.Validate(ErrRateCourierCommandIsNotConstructed)
}

// Caller returns the principal submitting the rating.
func (c RateCourierCommand) Caller() kernel.Principal {
	return c.caller
}

// Courier returns the courier being rated.
func (c RateCourierCommand) Courier() kernel.Principal {
	return c.courier
}

// Score returns the submitted score.
func (c RateCourierCommand) Score() uint64 {
	return c.score
}
