package ports

import (
	"context"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/dispute"
)

// DisputeRepository defines the persistence contract for dispute records.
// At most one dispute exists per package.
type DisputeRepository interface {
	// Add persists a new dispute record.
	Add(ctx context.Context, aggregate *dispute.Dispute) error

	// GetByPackageID retrieves the dispute filed against a package.
	// Returns an ObjectNotFound error when none was filed.
	GetByPackageID(ctx context.Context, packageID uint64) (*dispute.Dispute, error)
}
