package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// GetCourierQueryHandler retrieves a courier read model from the database.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for courier lookups.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle executes the lookup. Returns a CourierNotRegistered error when the
// principal never registered.
func (h GetCourierQueryHandler) Handle(
	ctx context.Context,
	query GetCourierQuery,
) (GetCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			principal,
			name,
			rating_total,
			rating_count
		FROM couriers
		WHERE principal = ?
	`, query.Principal().String()).Row()

	var resp GetCourierQueryResponse
	var principal string

	err := row.Scan(
		&principal,
		&resp.Name,
		&resp.RatingTotal,
		&resp.RatingCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCourierQueryResponse{}, errs.NewCourierNotRegisteredError(query.Principal().String())
	}
	if err != nil {
		return GetCourierQueryResponse{}, err
	}

	if resp.Principal, err = kernel.NewPrincipal(principal); err != nil {
		return GetCourierQueryResponse{}, err
	}
	if resp.RatingCount > 0 {
		resp.AverageRating = float64(resp.RatingTotal) / float64(resp.RatingCount)
	}
	return resp, nil
}
