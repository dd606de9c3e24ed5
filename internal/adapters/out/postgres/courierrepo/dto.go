// Package courierrepo implements courier aggregate persistence, keyed by
// the registering principal.
package courierrepo

import (
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/courier"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. Ratings are stored as a running total and count; the average
// is derived at read time.
type CourierDTO struct {
	Principal   string `gorm:"type:varchar(128);primaryKey"`
	Name        string `gorm:"type:varchar(256)"`
	RatingTotal uint64
	RatingCount uint64
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		Principal:   c.Principal().String(),
		Name:        c.Name(),
		RatingTotal: c.RatingTotal(),
		RatingCount: c.RatingCount(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	principal, err := kernel.NewPrincipal(dto.Principal)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(principal, dto.Name, dto.RatingTotal, dto.RatingCount)
}
