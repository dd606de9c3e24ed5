package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/commands"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

func TestNewCompleteDeliveryCommand_ValidInput(t *testing.T) {
	caller := principalFixture(t, "ST3COURIER")

	cmd, err := commands.NewCompleteDeliveryCommand(caller, 42)
	require.NoError(t, err)
	assert.True(t, cmd.Caller().IsEqual(caller))
	assert.Equal(t, uint64(42), cmd.PackageID())
}

func TestNewCompleteDeliveryCommand_ZeroID(t *testing.T) {
	caller := principalFixture(t, "ST3COURIER")

	_, err := commands.NewCompleteDeliveryCommand(caller, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCompleteDeliveryCommand_UnconstructedCaller(t *testing.T) {
	_, err := commands.NewCompleteDeliveryCommand(kernel.Principal{}, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrPrincipalIsNotConstructed)
}

func TestCompleteDeliveryCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.CompleteDeliveryCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCompleteDeliveryCommandIsNotConstructed)
}
