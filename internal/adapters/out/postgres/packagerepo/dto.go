// Package packagerepo provides data transfer objects and mapping functions
// for catalog package persistence.
package packagerepo

import (
	"time"

	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PackageDTO represents the database structure for persisting catalog packages.
type PackageDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Description  string
	Type         int `gorm:"index"`
	Quantity     int
	PriceCents   int64
	DeliveryTime string
	Popular      bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// fromDomain converts a catalog package to its database representation.
func fromDomain(aggregate *catalog.Package) PackageDTO {
	return PackageDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		Type:         int(aggregate.Type()),
		Quantity:     aggregate.Quantity(),
		PriceCents:   aggregate.Price().Cents(),
		DeliveryTime: aggregate.DeliveryTime(),
		Popular:      aggregate.Popular(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a catalog package.
func toDomain(dto PackageDTO) (*catalog.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestorePackage(
		id,
		dto.Name,
		dto.Description,
		catalog.PackageType(dto.Type),
		dto.Quantity,
		kernel.NewMoneyFromCents(dto.PriceCents),
		dto.DeliveryTime,
		dto.Popular,
		dto.CreatedAt,
	)
}
