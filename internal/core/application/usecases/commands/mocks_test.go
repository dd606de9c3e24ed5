package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/commands"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/courier"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/dispute"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/ports"
)

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id uint64) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, principal kernel.Principal) (*courier.Courier, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockDisputeRepository struct{ mock.Mock }

func (m *MockDisputeRepository) Add(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) GetByPackageID(ctx context.Context, packageID uint64) (*dispute.Dispute, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

type MockLedger struct{ mock.Mock }

func (m *MockLedger) Transfer(ctx context.Context, from, to kernel.Principal, amount uint64) error {
	args := m.Called(ctx, from, to, amount)
	return args.Error(0)
}

func (m *MockLedger) Credit(ctx context.Context, to kernel.Principal, amount uint64) error {
	args := m.Called(ctx, to, amount)
	return args.Error(0)
}

func (m *MockLedger) Balance(ctx context.Context, principal kernel.Principal) (uint64, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(uint64), args.Error(1)
}

// MockUnitOfWork satisfies every composite unit of work interface the
// handlers depend on.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUnitOfWork) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUnitOfWork) DisputeRepository() ports.DisputeRepository {
	args := m.Called()
	return args.Get(0).(ports.DisputeRepository)
}

func (m *MockUnitOfWork) Ledger() ports.Ledger {
	args := m.Called()
	return args.Get(0).(ports.Ledger)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockEscrowUoWFactory struct{ mock.Mock }

func (m *MockEscrowUoWFactory) Create() commands.EscrowUoW {
	args := m.Called()
	return args.Get(0).(commands.EscrowUoW)
}

type MockDisputeUoWFactory struct{ mock.Mock }

func (m *MockDisputeUoWFactory) Create() commands.DisputeUoW {
	args := m.Called()
	return args.Get(0).(commands.DisputeUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func principalFixture(t *testing.T, addr string) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(addr)
	require.NoError(t, err)
	return p
}

func addressFixture(t *testing.T, text string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(text)
	require.NoError(t, err)
	return a
}

func createdPackageFixture(t *testing.T, id uint64, sender, recipient kernel.Principal) *parcel.Package {
	t.Helper()
	pkg, err := parcel.NewPackage(
		id, sender, recipient, 500,
		addressFixture(t, "12 Dock Rd"), addressFixture(t, "7 Harbor Ln"),
	)
	require.NoError(t, err)
	return pkg
}

func acceptedPackageFixture(
	t *testing.T, id uint64, sender, recipient, assigned kernel.Principal,
) *parcel.Package {
	t.Helper()
	pkg, err := parcel.RestorePackage(
		id, sender, recipient, 500,
		addressFixture(t, "12 Dock Rd"), addressFixture(t, "7 Harbor Ln"),
		addressFixture(t, "12 Dock Rd"),
		&assigned, parcel.Accepted, parcel.EscrowHeld,
	)
	require.NoError(t, err)
	return pkg
}
