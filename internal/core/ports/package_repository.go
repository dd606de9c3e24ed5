// Package ports defines the persistence and ledger contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
)

// PackageRepository defines the persistence contract for package
// aggregates. Packages are keyed by their caller-supplied id and are never
// deleted; terminal states remain queryable forever.
type PackageRepository interface {
	// Add persists a new package aggregate. The id must not be taken.
	Add(ctx context.Context, aggregate *parcel.Package) error

	// Update persists changes to an existing package aggregate.
	Update(ctx context.Context, aggregate *parcel.Package) error

	// Get retrieves a package by id. Returns a PackageNotFound error when
	// no record exists.
	Get(ctx context.Context, id uint64) (*parcel.Package, error)

	// Exists reports whether a package with the given id was ever created.
	Exists(ctx context.Context, id uint64) (bool, error)
}
