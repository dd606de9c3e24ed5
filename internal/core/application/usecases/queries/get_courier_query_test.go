package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/queries"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
)

func TestNewGetCourierQuery_Valid(t *testing.T) {
	principal := principalFixture(t, "ST3COURIER")
	query, err := queries.NewGetCourierQuery(principal)
	require.NoError(t, err)
	assert.True(t, query.Principal().IsEqual(principal))
	require.NoError(t, query.Validate())
}

func TestNewGetCourierQuery_UnconstructedPrincipal(t *testing.T) {
	_, err := queries.NewGetCourierQuery(kernel.Principal{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrPrincipalIsNotConstructed)
}

func TestGetCourierQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCourierQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCourierQueryIsNotConstructed)
}
