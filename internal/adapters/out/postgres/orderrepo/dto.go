// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It handles the conversion between the order domain
// aggregate and its relational representation.
package orderrepo

import (
	"time"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Package fields are denormalized on purpose: they are the snapshot the order
// was sold with, so there is no foreign key into the packages table.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	InstagramUsername string
	PackageID         uuid.UUID `gorm:"type:uuid;index"`
	PackageName       string
	PackageQuantity   int
	PackagePriceCents int64
	Status            int    `gorm:"index"`
	PixCode           string `gorm:"type:text"`
	PixQRCode         string `gorm:"type:text"`
	PaymentID         string
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerName:      aggregate.CustomerName(),
		CustomerEmail:     aggregate.CustomerEmail(),
		CustomerPhone:     aggregate.CustomerPhone(),
		InstagramUsername: aggregate.InstagramUsername(),
		PackageID:         aggregate.PackageID().Bytes(),
		PackageName:       aggregate.PackageName(),
		PackageQuantity:   aggregate.PackageQuantity(),
		PackagePriceCents: aggregate.PackagePrice().Cents(),
		Status:            int(aggregate.Status()),
		PixCode:           aggregate.PixCode(),
		PixQRCode:         aggregate.PixQRCode(),
		PaymentID:         aggregate.PaymentID(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerEmail,
		dto.CustomerPhone,
		dto.InstagramUsername,
		packageID,
		dto.PackageName,
		dto.PackageQuantity,
		kernel.NewMoneyFromCents(dto.PackagePriceCents),
		order.Status(dto.Status),
		dto.PixCode,
		dto.PixQRCode,
		dto.PaymentID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
