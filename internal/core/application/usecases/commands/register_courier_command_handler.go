package commands

import (
	"context"
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/courier"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// RegisterCourierCommandHandler registers the caller as a courier.
// A principal registers at most once; courier records are never deleted.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewRegisterCourierCommandHandler creates a handler for courier registration.
func NewRegisterCourierCommandHandler(uowFactory CourierUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{uowFactory: uowFactory}
}

// Handle processes the registration command. Fails with
// CourierAlreadyRegistered when the caller already has a courier record.
func (h RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) error {
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

	_, err := courierRepo.Get(ctx, cmd.Caller())
	if err == nil {
		return errs.NewCourierAlreadyRegisteredError(cmd.Caller().String())
	}
	if !errors.Is(err, errs.ErrCourierNotRegistered) {
		return err
	}

	newCourier, err := courier.NewCourier(cmd.Caller(), cmd.Name())
	if err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, newCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
