package queries

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrGetCourierPackagesQueryIsNotConstructed = errors.New(
	"GetCourierPackagesQuery must be created via NewGetCourierPackagesQuery constructor",
)

// GetCourierPackagesQuery retrieves every package ever assigned to a
// courier, including delivered and disputed ones.
type GetCourierPackagesQuery struct {
	courier kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetCourierPackagesQuery creates a query for one courier's packages.
func NewGetCourierPackagesQuery(courier kernel.Principal) (GetCourierPackagesQuery, error) {
	if err := courier.Validate(); err != nil {
		return GetCourierPackagesQuery{}, err
	}
	return GetCourierPackagesQuery{
		courier: courier,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierPackagesQueryIsNotConstructed)
}

// Courier returns the courier whose packages are looked up.
func (q GetCourierPackagesQuery) Courier() kernel.Principal {
	return q.courier
}

// GetCourierPackagesQueryResponse is the read model of a package from the
// assigned courier's perspective.
type GetCourierPackagesQueryResponse struct {
	ID               uint64
	Sender           kernel.Principal
	Recipient        kernel.Principal
	Price            uint64
	CurrentLocation  kernel.Address
	DeliveryLocation kernel.Address
	Status           string
}
