package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/commands"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/courier"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

func TestNewRateCourierCommand_ValidInput(t *testing.T) {
	caller := principalFixture(t, "ST1SENDER")
	target := principalFixture(t, "ST3COURIER")

	cmd, err := commands.NewRateCourierCommand(caller, target, 4)
	require.NoError(t, err)
	assert.True(t, cmd.Caller().IsEqual(caller))
	assert.True(t, cmd.Courier().IsEqual(target))
	assert.Equal(t, uint64(4), cmd.Score())
}

func TestNewRateCourierCommand_ScoreBounds(t *testing.T) {
	caller := principalFixture(t, "ST1SENDER")
	target := principalFixture(t, "ST3COURIER")

	_, err := commands.NewRateCourierCommand(caller, target, courier.RatingMin)
	require.NoError(t, err)
	_, err = commands.NewRateCourierCommand(caller, target, courier.RatingMax)
	require.NoError(t, err)

	_, err = commands.NewRateCourierCommand(caller, target, 0)
	require.ErrorIs(t, err, errs.ErrInvalidScore)
	_, err = commands.NewRateCourierCommand(caller, target, courier.RatingMax+1)
	require.ErrorIs(t, err, errs.ErrInvalidScore)
}

func TestNewRateCourierCommand_UnconstructedTarget(t *testing.T) {
	caller := principalFixture(t, "ST1SENDER")

	_, err := commands.NewRateCourierCommand(caller, kernel.Principal{}, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrPrincipalIsNotConstructed)
}

func TestRateCourierCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.RateCourierCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrRateCourierCommandIsNotConstructed)
}
