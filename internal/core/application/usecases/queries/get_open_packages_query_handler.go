package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
)

// GetOpenPackagesQueryHandler retrieves all packages in Created status from
// the database, sorted by id for a stable feed.
type GetOpenPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenPackagesQueryHandler creates a handler for the open package feed.
func NewGetOpenPackagesQueryHandler(db *gorm.DB) GetOpenPackagesQueryHandler {
	return GetOpenPackagesQueryHandler{db: db}
}

// Handle executes the query. An empty feed is a valid result, not an error.
func (h GetOpenPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetOpenPackagesQuery,
) ([]GetOpenPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := make([]GetOpenPackagesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender,
			price,
			pickup_location,
			delivery_location
		FROM packages
		WHERE status = ?
		ORDER BY id
	`, int(parcel.Created)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pkg GetOpenPackagesQueryResponse
		var sender, pickup, delivery string

		err = rows.Scan(
			&pkg.ID,
			&sender,
			&pkg.Price,
			&pickup,
			&delivery,
		)
		if err != nil {
			return nil, err
		}

		if pkg.Sender, err = kernel.NewPrincipal(sender); err != nil {
			return nil, err
		}
		if pkg.PickupLocation, err = kernel.NewAddress(pickup); err != nil {
			return nil, err
		}
		if pkg.DeliveryLocation, err = kernel.NewAddress(delivery); err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
