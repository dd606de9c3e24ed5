package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/commands"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/courier"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

func TestAcceptPackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sender := principalFixture(t, "ST1SENDER")
	recipient := principalFixture(t, "ST2RECIPIENT")
	caller := principalFixture(t, "ST3COURIER")
	cmd, err := commands.NewAcceptPackageCommand(caller, 42)
	require.NoError(t, err)

	pkg := createdPackageFixture(t, 42, sender, recipient)
	registered, err := courier.NewCourier(caller, "Swift Parcels")
	require.NoError(t, err)

	packageRepo := new(MockPackageRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Get", ctx, uint64(42)).Return(pkg, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, caller).Return(registered, nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptPackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Accepted, pkg.Status())
	require.NotNil(t, pkg.Courier())
	assert.True(t, pkg.Courier().IsEqual(caller))
	packageRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptPackageCommandHandler_Handle_PackageNotFound(t *testing.T) {
	ctx := t.Context()
	caller := principalFixture(t, "ST3COURIER")
	cmd, err := commands.NewAcceptPackageCommand(caller, 42)
	require.NoError(t, err)

	packageRepo := new(MockPackageRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Get", ctx, uint64(42)).Return(nil, errs.NewPackageNotFoundError(42)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptPackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPackageNotFound)
	uow.AssertNotCalled(t, "Commit")
}

func TestAcceptPackageCommandHandler_Handle_CourierNotRegistered(t *testing.T) {
	ctx := t.Context()
	sender := principalFixture(t, "ST1SENDER")
	recipient := principalFixture(t, "ST2RECIPIENT")
	caller := principalFixture(t, "ST3COURIER")
	cmd, err := commands.NewAcceptPackageCommand(caller, 42)
	require.NoError(t, err)

	pkg := createdPackageFixture(t, 42, sender, recipient)

	packageRepo := new(MockPackageRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Get", ctx, uint64(42)).Return(pkg, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, caller).Return(nil, errs.NewCourierNotRegisteredError(caller.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptPackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCourierNotRegistered)
	assert.Equal(t, parcel.Created, pkg.Status())
	packageRepo.AssertNotCalled(t, "Update")
}

func TestAcceptPackageCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	sender := principalFixture(t, "ST1SENDER")
	recipient := principalFixture(t, "ST2RECIPIENT")
	assigned := principalFixture(t, "ST4OTHERCOURIER")
	caller := principalFixture(t, "ST3COURIER")
	cmd, err := commands.NewAcceptPackageCommand(caller, 42)
	require.NoError(t, err)

	pkg := acceptedPackageFixture(t, 42, sender, recipient, assigned)
	registered, err := courier.NewCourier(caller, "Swift Parcels")
	require.NoError(t, err)

	packageRepo := new(MockPackageRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Get", ctx, uint64(42)).Return(pkg, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, caller).Return(registered, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptPackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.NotNil(t, pkg.Courier())
	assert.True(t, pkg.Courier().IsEqual(assigned))
	packageRepo.AssertNotCalled(t, "Update")
}

func TestAcceptPackageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptPackageCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewAcceptPackageCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAcceptPackageCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
