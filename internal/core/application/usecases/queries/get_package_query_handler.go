package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// GetPackageQueryHandler retrieves a single package read model from the
// database, bypassing the aggregate layer.
type GetPackageQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageQueryHandler creates a handler for package lookups.
func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

// Handle executes the lookup. Returns a PackageNotFound error when no
// package with the given id exists.
func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) (GetPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender,
			recipient,
			price,
			pickup_location,
			delivery_location,
			current_location,
			courier,
			status,
			escrow
		FROM packages
		WHERE id = ?
	`, query.PackageID()).Row()

	var resp GetPackageQueryResponse
	var sender, recipient, pickup, delivery, current string
	var courier sql.NullString
	var status, escrow int

	err := row.Scan(
		&resp.ID,
		&sender,
		&recipient,
		&resp.Price,
		&pickup,
		&delivery,
		&current,
		&courier,
		&status,
		&escrow,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPackageQueryResponse{}, errs.NewPackageNotFoundError(query.PackageID())
	}
	if err != nil {
		return GetPackageQueryResponse{}, err
	}

	if resp.Sender, err = kernel.NewPrincipal(sender); err != nil {
		return GetPackageQueryResponse{}, err
	}
	if resp.Recipient, err = kernel.NewPrincipal(recipient); err != nil {
		return GetPackageQueryResponse{}, err
	}
	if resp.PickupLocation, err = kernel.NewAddress(pickup); err != nil {
		return GetPackageQueryResponse{}, err
	}
	if resp.DeliveryLocation, err = kernel.NewAddress(delivery); err != nil {
		return GetPackageQueryResponse{}, err
	}
	if resp.CurrentLocation, err = kernel.NewAddress(current); err != nil {
		return GetPackageQueryResponse{}, err
	}
	if courier.Valid {
		assigned, courierErr := kernel.NewPrincipal(courier.String)
		if courierErr != nil {
			return GetPackageQueryResponse{}, courierErr
		}
		resp.Courier = &assigned
	}

	resp.Status = parcel.Status(status).String()
	resp.Escrow = parcel.EscrowState(escrow).String()
	return resp, nil
}
