package disputerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/dispute"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// GormDisputeRepository implements DisputeRepository using GORM.
type GormDisputeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormDisputeRepository creates a new GORM dispute repository.
func NewGormDisputeRepository(db *gorm.DB, tracker aggregateTracker) *GormDisputeRepository {
	return &GormDisputeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dispute record to the database.
func (r *GormDisputeRepository) Add(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByPackageID retrieves the dispute filed against a package.
func (r *GormDisputeRepository) GetByPackageID(ctx context.Context, packageID uint64) (*dispute.Dispute, error) {
	var dto DisputeDTO
	if err := r.db.WithContext(ctx).First(&dto, "package_id = ?", packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", packageID)
		}
		return nil, err
	}

	return toDomain(dto)
}
