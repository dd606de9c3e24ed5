// Package queries contains the read side of the application layer. Query
// handlers go straight to the database with raw SQL and return flat read
// models; they never load aggregates or take part in transactions.
package queries

import (
	"errors"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery retrieves the full public state of a single package.
// Lookups are open: any caller may inspect any package.
//
// Example:
//
//	query, _ := NewGetPackageQuery(42)
//	handler := NewGetPackageQueryHandler(db)
//
//	pkg, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get package: %w", err)
//	}
//	fmt.Printf("Package %d is %s\n", pkg.ID, pkg.Status)
type GetPackageQuery struct {
	packageID uint64

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for one package by id.
func NewGetPackageQuery(packageID uint64) (GetPackageQuery, error) {
	if packageID == 0 {
		return GetPackageQuery{}, errs.NewValueIsInvalidError("package id")
	}
	return GetPackageQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// PackageID returns the id being looked up.
func (q GetPackageQuery) PackageID() uint64 {
	return q.packageID
}

// GetPackageQueryResponse is the read model of a package. The courier field
// is nil until a courier accepts.
type GetPackageQueryResponse struct {
	ID               uint64
	Sender           kernel.Principal
	Recipient        kernel.Principal
	Price            uint64
	PickupLocation   kernel.Address
	DeliveryLocation kernel.Address
	CurrentLocation  kernel.Address
	Courier          *kernel.Principal
	Status           string
	Escrow           string
}
