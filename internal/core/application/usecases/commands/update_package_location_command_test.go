package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/commands"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

func TestNewUpdatePackageLocationCommand_ValidInput(t *testing.T) {
	caller := principalFixture(t, "ST3COURIER")
	location := addressFixture(t, "Warehouse 9")

	cmd, err := commands.NewUpdatePackageLocationCommand(caller, 42, location)
	require.NoError(t, err)
	assert.True(t, cmd.Caller().IsEqual(caller))
	assert.Equal(t, uint64(42), cmd.PackageID())
	assert.Equal(t, location, cmd.Location())
}

func TestNewUpdatePackageLocationCommand_ZeroID(t *testing.T) {
	caller := principalFixture(t, "ST3COURIER")

	_, err := commands.NewUpdatePackageLocationCommand(caller, 0, addressFixture(t, "Warehouse 9"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdatePackageLocationCommand_UnconstructedLocation(t *testing.T) {
	caller := principalFixture(t, "ST3COURIER")

	_, err := commands.NewUpdatePackageLocationCommand(caller, 42, kernel.Address{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
}

func TestUpdatePackageLocationCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.UpdatePackageLocationCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdatePackageLocationCommandIsNotConstructed)
}
