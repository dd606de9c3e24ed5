package queries

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrGetCourierQueryIsNotConstructed = errors.New(
	"GetCourierQuery must be created via NewGetCourierQuery constructor",
)

// GetCourierQuery retrieves a courier's profile and aggregated rating.
type GetCourierQuery struct {
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetCourierQuery creates a query for one courier by principal.
func NewGetCourierQuery(principal kernel.Principal) (GetCourierQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetCourierQuery{}, err
	}
	return GetCourierQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// Principal returns the courier principal being looked up.
func (q GetCourierQuery) Principal() kernel.Principal {
	return q.principal
}

// GetCourierQueryResponse is the read model of a courier. AverageRating is
// zero while no ratings were submitted.
type GetCourierQueryResponse struct {
	Principal     kernel.Principal
	Name          string
	RatingTotal   uint64
	RatingCount   uint64
	AverageRating float64
}
