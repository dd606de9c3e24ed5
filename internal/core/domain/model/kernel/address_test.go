package kernel_test

import (
	"strings"
	"testing"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create address from text", func(t *testing.T) {
		a, err := kernel.NewAddress("123 Pickup St")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "123 Pickup St", a.String())
	})

	t.Run("should fail with empty text", func(t *testing.T) {
		_, err := kernel.NewAddress("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when text exceeds limit", func(t *testing.T) {
		_, err := kernel.NewAddress(strings.Repeat("a", kernel.AddressMaxLen+1))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept text at the limit", func(t *testing.T) {
		a, err := kernel.NewAddress(strings.Repeat("a", kernel.AddressMaxLen))

		require.NoError(t, err)
		require.NoError(t, a.Validate())
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a, _ := kernel.NewAddress("456 Delivery Ave")
	b, _ := kernel.NewAddress("456 Delivery Ave")
	c, _ := kernel.NewAddress("789 Other Rd")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestAddress_Validate(t *testing.T) {
	var a kernel.Address

	err := a.Validate()

	require.Error(t, err)
	assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
}
