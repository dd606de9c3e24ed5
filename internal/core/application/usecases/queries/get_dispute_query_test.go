package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/queries"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

func TestNewGetDisputeQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDisputeQuery(42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), query.PackageID())
	require.NoError(t, query.Validate())
}

func TestNewGetDisputeQuery_ZeroID(t *testing.T) {
	_, err := queries.NewGetDisputeQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetDisputeQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDisputeQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDisputeQueryIsNotConstructed)
}
