package commands

import (
	"context"
)

// RateCourierCommandHandler adds a score to a courier's running rating
// total. Any principal may rate any registered courier, themselves
// included; there is no delivery-participation check.
type RateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewRateCourierCommandHandler creates a handler for courier rating.
func NewRateCourierCommandHandler(uowFactory CourierUoWFactory) RateCourierCommandHandler {
	return RateCourierCommandHandler{uowFactory: uowFactory}
}

// Handle processes the rating command. Fails with CourierNotRegistered
// when the target has no courier record and InvalidScore when the score is
// outside the accepted range.
func (h RateCourierCommandHandler) Handle(ctx context.Context, cmd RateCourierCommand) error {
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

	courierRepo := uow.CourierRepository()

	ratedCourier, err := courierRepo.Get(ctx, cmd.Courier())
	if err != nil {
		return err
	}

	if err = ratedCourier.AddRating(cmd.Score()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, ratedCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
