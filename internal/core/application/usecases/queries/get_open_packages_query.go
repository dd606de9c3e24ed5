package queries

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrGetOpenPackagesQueryIsNotConstructed = errors.New(
	"GetOpenPackagesQuery must be created via NewGetOpenPackagesQuery constructor",
)

// GetOpenPackagesQuery retrieves all packages still waiting for a courier.
// This is the feed couriers browse to find work.
//
// Example:
//
//	query := NewGetOpenPackagesQuery()
//	handler := NewGetOpenPackagesQueryHandler(db)
//
//	open, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open packages: %w", err)
//	}
//	fmt.Printf("%d packages awaiting pickup\n", len(open))
type GetOpenPackagesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenPackagesQuery creates a parameterless query for unaccepted
// packages.
func NewGetOpenPackagesQuery() GetOpenPackagesQuery {
	return GetOpenPackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenPackagesQueryIsNotConstructed)
}

// GetOpenPackagesQueryResponse is the read model of a package awaiting
// acceptance.
type GetOpenPackagesQueryResponse struct {
	ID               uint64
	Sender           kernel.Principal
	Price            uint64
	PickupLocation   kernel.Address
	DeliveryLocation kernel.Address
}
