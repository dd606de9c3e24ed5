// Package disputerepo implements dispute record persistence. A unique
// index on package_id backs the at-most-one-dispute rule at the storage
// level, on top of the status guard in the domain.
package disputerepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/dispute"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
)

// DisputeDTO represents the database structure for persisting dispute
// records.
type DisputeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID uint64    `gorm:"uniqueIndex"`
	Filer     string    `gorm:"type:varchar(128)"`
	Reason    string    `gorm:"type:varchar(256)"`
	FiledAt   time.Time
}

// TableName overrides GORM's default naming to use "disputes".
func (DisputeDTO) TableName() string {
	return "disputes"
}

func fromDomain(d *dispute.Dispute) DisputeDTO {
	return DisputeDTO{
		ID:        d.ID(),
		PackageID: d.PackageID(),
		Filer:     d.Filer().String(),
		Reason:    d.Reason(),
		FiledAt:   d.FiledAt(),
	}
}

func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	filer, err := kernel.NewPrincipal(dto.Filer)
	if err != nil {
		return nil, err
	}

	return dispute.RestoreDispute(dto.ID, dto.PackageID, filer, dto.Reason, dto.FiledAt)
}
