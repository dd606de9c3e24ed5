package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/commands"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/dispute"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

func TestFileDisputeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sender := principalFixture(t, "ST1SENDER")
	recipient := principalFixture(t, "ST2RECIPIENT")
	cmd, err := commands.NewFileDisputeCommand(recipient, 42, "never arrived")
	require.NoError(t, err)

	pkg := createdPackageFixture(t, 42, sender, recipient)

	packageRepo := new(MockPackageRepository)
	disputeRepo := new(MockDisputeRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Get", ctx, uint64(42)).Return(pkg, nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		disputeRepo.On("Add", ctx, mock.AnythingOfType("*dispute.Dispute")).Return(nil).Once(),
		packageRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFileDisputeCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Disputed, pkg.Status())
	assert.Equal(t, parcel.EscrowHeld, pkg.Escrow())

	filed := disputeRepo.Calls[0].Arguments[1].(*dispute.Dispute)
	assert.Equal(t, uint64(42), filed.PackageID())
	assert.True(t, filed.Filer().IsEqual(recipient))
	assert.Equal(t, "never arrived", filed.Reason())

	packageRepo.AssertExpectations(t)
	disputeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFileDisputeCommandHandler_Handle_NotParty(t *testing.T) {
	ctx := t.Context()
	sender := principalFixture(t, "ST1SENDER")
	recipient := principalFixture(t, "ST2RECIPIENT")
	outsider := principalFixture(t, "ST5OUTSIDER")
	cmd, err := commands.NewFileDisputeCommand(outsider, 42, "never arrived")
	require.NoError(t, err)

	pkg := createdPackageFixture(t, 42, sender, recipient)

	packageRepo := new(MockPackageRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Get", ctx, uint64(42)).Return(pkg, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFileDisputeCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, parcel.Created, pkg.Status())
	packageRepo.AssertNotCalled(t, "Update")
}

func TestFileDisputeCommandHandler_Handle_AlreadyDisputed(t *testing.T) {
	ctx := t.Context()
	sender := principalFixture(t, "ST1SENDER")
	recipient := principalFixture(t, "ST2RECIPIENT")
	cmd, err := commands.NewFileDisputeCommand(sender, 42, "second thoughts")
	require.NoError(t, err)

	pkg, err := parcel.RestorePackage(
		42, sender, recipient, 500,
		addressFixture(t, "12 Dock Rd"), addressFixture(t, "7 Harbor Ln"),
		addressFixture(t, "12 Dock Rd"),
		nil, parcel.Disputed, parcel.EscrowHeld,
	)
	require.NoError(t, err)

	packageRepo := new(MockPackageRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Get", ctx, uint64(42)).Return(pkg, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFileDisputeCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	packageRepo.AssertNotCalled(t, "Update")
}

func TestFileDisputeCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.FileDisputeCommand{} // not constructed properly

	factory := new(MockDisputeUoWFactory)
	handler := commands.NewFileDisputeCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrFileDisputeCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
