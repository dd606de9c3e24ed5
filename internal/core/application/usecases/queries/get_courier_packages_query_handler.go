package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
)

// GetCourierPackagesQueryHandler retrieves the packages assigned to one
// courier from the database, sorted by id.
type GetCourierPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierPackagesQueryHandler creates a handler for courier package
// listings.
func NewGetCourierPackagesQueryHandler(db *gorm.DB) GetCourierPackagesQueryHandler {
	return GetCourierPackagesQueryHandler{db: db}
}

// Handle executes the query. A courier with no assignments gets an empty
// list; no registration check is performed here.
func (h GetCourierPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierPackagesQuery,
) ([]GetCourierPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := make([]GetCourierPackagesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender,
			recipient,
			price,
			current_location,
			delivery_location,
			status
		FROM packages
		WHERE courier = ?
		ORDER BY id
	`, query.Courier().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pkg GetCourierPackagesQueryResponse
		var sender, recipient, current, delivery string
		var status int

		err = rows.Scan(
			&pkg.ID,
			&sender,
			&recipient,
			&pkg.Price,
			&current,
			&delivery,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if pkg.Sender, err = kernel.NewPrincipal(sender); err != nil {
			return nil, err
		}
		if pkg.Recipient, err = kernel.NewPrincipal(recipient); err != nil {
			return nil, err
		}
		if pkg.CurrentLocation, err = kernel.NewAddress(current); err != nil {
			return nil, err
		}
		if pkg.DeliveryLocation, err = kernel.NewAddress(delivery); err != nil {
			return nil, err
		}
		pkg.Status = parcel.Status(status).String()
		packages = append(packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
