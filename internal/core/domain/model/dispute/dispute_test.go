package dispute_test

import (
	"strings"
	"testing"
	"time"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/dispute"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filer(t *testing.T) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal("wallet_2")
	require.NoError(t, err)
	return p
}

func TestNewDispute(t *testing.T) {
	t.Run("should file dispute with fresh id and marker", func(t *testing.T) {
		d, err := dispute.NewDispute(1, filer(t), "late")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.NotEqual(t, uuid.Nil, d.ID())
		assert.Equal(t, uint64(1), d.PackageID())
		assert.Equal(t, "wallet_2", d.Filer().String())
		assert.Equal(t, "late", d.Reason())
		assert.WithinDuration(t, time.Now().UTC(), d.FiledAt(), time.Minute)
	})

	t.Run("should fail with zero package id", func(t *testing.T) {
		_, err := dispute.NewDispute(0, filer(t), "late")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with empty reason", func(t *testing.T) {
		_, err := dispute.NewDispute(1, filer(t), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with over-long reason", func(t *testing.T) {
		_, err := dispute.NewDispute(1, filer(t), strings.Repeat("r", dispute.ReasonMaxLen+1))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with zero-value filer", func(t *testing.T) {
		var nobody kernel.Principal

		_, err := dispute.NewDispute(1, nobody, "late")

		require.Error(t, err)
	})
}

func TestRestoreDispute(t *testing.T) {
	t.Run("restores persisted dispute", func(t *testing.T) {
		id := uuid.New()
		filedAt := time.Now().UTC().Add(-time.Hour)

		d, err := dispute.RestoreDispute(id, 7, filer(t), "damaged", filedAt)

		require.NoError(t, err)
		assert.Equal(t, id, d.ID())
		assert.Equal(t, uint64(7), d.PackageID())
		assert.Equal(t, filedAt, d.FiledAt())
	})

	t.Run("rejects nil id", func(t *testing.T) {
		_, err := dispute.RestoreDispute(uuid.Nil, 7, filer(t), "damaged", time.Now())

		require.Error(t, err)
	})
}

func TestDispute_Validate(t *testing.T) {
	var d *dispute.Dispute

	assert.Equal(t, dispute.ErrDisputeIsNotConstructed, d.Validate())
	assert.Equal(t, dispute.ErrDisputeIsNotConstructed, (&dispute.Dispute{}).Validate())
}
