package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/queries"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

func principalFixture(t *testing.T, addr string) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(addr)
	require.NoError(t, err)
	return p
}

func TestNewGetPackageQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPackageQuery(42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), query.PackageID())
	require.NoError(t, query.Validate())
}

func TestNewGetPackageQuery_ZeroID(t *testing.T) {
	_, err := queries.NewGetPackageQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetPackageQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPackageQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPackageQueryIsNotConstructed)
}
