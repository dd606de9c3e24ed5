package courierrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/courier"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewCourierAlreadyRegisteredError(aggregate.Principal().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.Principal(), aggregate)
	return nil
}

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("principal = ?", dto.Principal).
		Updates(map[string]any{
			"rating_total": dto.RatingTotal,
			"rating_count": dto.RatingCount,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewCourierNotRegisteredError(aggregate.Principal().String())
	}

	r.tracker.TrackAggregate(aggregate.Principal(), aggregate)
	return nil
}

// Get retrieves a courier by principal. The row is locked for the duration
// of the surrounding transaction, so concurrent rating submissions
// serialize instead of losing an accumulator update.
func (r *GormCourierRepository) Get(ctx context.Context, principal kernel.Principal) (*courier.Courier, error) {
	if err := principal.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "principal = ?", principal.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewCourierNotRegisteredError(principal.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
