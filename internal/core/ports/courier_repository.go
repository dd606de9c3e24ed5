package ports

import (
	"context"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/courier"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier
// aggregates, keyed by the principal that registered.
type CourierRepository interface {
	// Add persists a new courier aggregate. The principal must not already
	// be registered.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate (rating
	// fields only; identity and name are immutable after registration).
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by principal. Returns a CourierNotRegistered
	// error when no record exists.
	Get(ctx context.Context, principal kernel.Principal) (*courier.Courier, error)
}
