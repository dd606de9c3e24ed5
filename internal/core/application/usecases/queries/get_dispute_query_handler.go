package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// GetDisputeQueryHandler retrieves a dispute read model from the database.
type GetDisputeQueryHandler struct {
	db *gorm.DB
}

// NewGetDisputeQueryHandler creates a handler for dispute lookups.
func NewGetDisputeQueryHandler(db *gorm.DB) GetDisputeQueryHandler {
	return GetDisputeQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFound error when no
// dispute was filed against the package.
func (h GetDisputeQueryHandler) Handle(
	ctx context.Context,
	query GetDisputeQuery,
) (GetDisputeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDisputeQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			package_id,
			filer,
			reason,
			filed_at
		FROM disputes
		WHERE package_id = ?
	`, query.PackageID()).Row()

	var resp GetDisputeQueryResponse
	var filer string

	err := row.Scan(
		&resp.ID,
		&resp.PackageID,
		&filer,
		&resp.Reason,
		&resp.FiledAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDisputeQueryResponse{}, errs.NewObjectNotFoundError("dispute", query.PackageID())
	}
	if err != nil {
		return GetDisputeQueryResponse{}, err
	}

	if resp.Filer, err = kernel.NewPrincipal(filer); err != nil {
		return GetDisputeQueryResponse{}, err
	}
	return resp, nil
}
