package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/commands"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/courier"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

func TestRateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	caller := principalFixture(t, "ST1SENDER")
	target := principalFixture(t, "ST3COURIER")
	cmd, err := commands.NewRateCourierCommand(caller, target, 4)
	require.NoError(t, err)

	rated, err := courier.NewCourier(target, "Swift Parcels")
	require.NoError(t, err)

	repo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Get", ctx, target).Return(rated, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, uint64(4), rated.RatingTotal())
	assert.Equal(t, uint64(1), rated.RatingCount())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRateCourierCommandHandler_Handle_NotRegistered(t *testing.T) {
	ctx := t.Context()
	caller := principalFixture(t, "ST1SENDER")
	target := principalFixture(t, "ST3COURIER")
	cmd, err := commands.NewRateCourierCommand(caller, target, 4)
	require.NoError(t, err)

	repo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Get", ctx, target).Return(nil, errs.NewCourierNotRegisteredError(target.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCourierNotRegistered)
	repo.AssertNotCalled(t, "Update")
}

func TestRateCourierCommandHandler_Handle_SelfRatingAllowed(t *testing.T) {
	ctx := t.Context()
	target := principalFixture(t, "ST3COURIER")
	cmd, err := commands.NewRateCourierCommand(target, target, 5)
	require.NoError(t, err)

	rated, err := courier.NewCourier(target, "Swift Parcels")
	require.NoError(t, err)

	repo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Get", ctx, target).Return(rated, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 5.0, rated.AverageRating(), 0.001)
}

func TestRateCourierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RateCourierCommand{} // not constructed properly

	factory := new(MockCourierUoWFactory)
	handler := commands.NewRateCourierCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRateCourierCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
