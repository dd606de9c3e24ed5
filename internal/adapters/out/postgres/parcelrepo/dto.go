// Package parcelrepo implements package aggregate persistence. It maps
// between the Package domain aggregate and its relational representation,
// re-validating every invariant on the way back in through RestorePackage.
package parcelrepo

import (
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/kernel"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/domain/model/parcel"
)

// PackageDTO represents the database structure for persisting package
// aggregates. The id is caller-supplied, never generated.
type PackageDTO struct {
	ID               uint64  `gorm:"primaryKey;autoIncrement:false"`
	Sender           string  `gorm:"type:varchar(128);index"`
	Recipient        string  `gorm:"type:varchar(128);index"`
	Price            uint64  `gorm:"not null"`
	PickupLocation   string  `gorm:"type:varchar(256)"`
	DeliveryLocation string  `gorm:"type:varchar(256)"`
	CurrentLocation  string  `gorm:"type:varchar(256)"`
	Courier          *string `gorm:"type:varchar(128);index"`
	Status           int     `gorm:"index"`
	Escrow           int
}

// TableName overrides GORM's default naming to use "packages".
func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(pkg *parcel.Package) PackageDTO {
	var courier *string
	if assigned := pkg.Courier(); assigned != nil {
		raw := assigned.String()
		courier = &raw
	}

	return PackageDTO{
		ID:               pkg.ID(),
		Sender:           pkg.Sender().String(),
		Recipient:        pkg.Recipient().String(),
		Price:            pkg.Price(),
		PickupLocation:   pkg.PickupLocation().String(),
		DeliveryLocation: pkg.DeliveryLocation().String(),
		CurrentLocation:  pkg.CurrentLocation().String(),
		Courier:          courier,
		Status:           int(pkg.Status()),
		Escrow:           int(pkg.Escrow()),
	}
}

func toDomain(dto PackageDTO) (*parcel.Package, error) {
	sender, err := kernel.NewPrincipal(dto.Sender)
	if err != nil {
		return nil, err
	}
	recipient, err := kernel.NewPrincipal(dto.Recipient)
	if err != nil {
		return nil, err
	}
	pickup, err := kernel.NewAddress(dto.PickupLocation)
	if err != nil {
		return nil, err
	}
	delivery, err := kernel.NewAddress(dto.DeliveryLocation)
	if err != nil {
		return nil, err
	}
	current, err := kernel.NewAddress(dto.CurrentLocation)
	if err != nil {
		return nil, err
	}

	var courier *kernel.Principal
	if dto.Courier != nil {
		assigned, courierErr := kernel.NewPrincipal(*dto.Courier)
		if courierErr != nil {
			return nil, courierErr
		}
		courier = &assigned
	}

	return parcel.RestorePackage(
		dto.ID, sender, recipient, dto.Price,
		pickup, delivery, current,
		courier, parcel.Status(dto.Status), parcel.EscrowState(dto.Escrow),
	)
}
