package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrGetDisputeQueryIsNotConstructed = errors.New(
	"GetDisputeQuery must be created via NewGetDisputeQuery constructor",
)

// GetDisputeQuery retrieves the dispute filed against a package, if any.
type GetDisputeQuery struct {
	packageID uint64

	guard guard.ConstructorGuard
}

// NewGetDisputeQuery creates a query for the dispute of one package.
func NewGetDisputeQuery(packageID uint64) (GetDisputeQuery, error) {
	if packageID == 0 {
		return GetDisputeQuery{}, errs.NewValueIsInvalidError("package id")
	}
	return GetDisputeQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDisputeQuery) Validate() error {
	return q.guard.Validate(ErrGetDisputeQueryIsNotConstructed)
}

// PackageID returns the id of the package whose dispute is looked up.
func (q GetDisputeQuery) PackageID() uint64 {
	return q.packageID
}

// GetDisputeQueryResponse is the read model of a dispute record.
type GetDisputeQueryResponse struct {
	ID        uuid.UUID
	PackageID uint64
	Filer     kernel.Principal
	Reason    string
	FiledAt   time.Time
}
