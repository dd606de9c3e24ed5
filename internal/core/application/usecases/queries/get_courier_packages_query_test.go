package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/queries"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
)

func TestNewGetCourierPackagesQuery_Valid(t *testing.T) {
	courier := principalFixture(t, "ST3COURIER")
	query, err := queries.NewGetCourierPackagesQuery(courier)
	require.NoError(t, err)
	assert.True(t, query.Courier().IsEqual(courier))
	require.NoError(t, query.Validate())
}

func TestNewGetCourierPackagesQuery_UnconstructedPrincipal(t *testing.T) {
	_, err := queries.NewGetCourierPackagesQuery(kernel.Principal{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrPrincipalIsNotConstructed)
}

func TestGetCourierPackagesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCourierPackagesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCourierPackagesQueryIsNotConstructed)
}
