package queries

import (
	"errors"
	"time"

	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/guard"
)

var (
	ErrGetAllPackagesQueryIsNotConstructed = errors.New(
		"GetAllPackagesQuery must be created via NewGetAllPackagesQuery constructor",
	)
)

// GetAllPackagesQuery retrieves the whole promotion package catalog.
type GetAllPackagesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPackagesQuery creates a query to retrieve all packages.
func NewGetAllPackagesQuery() GetAllPackagesQuery {
	return GetAllPackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPackagesQueryIsNotConstructed)
}

// PackageResponse is the read-side projection of a catalog package.
type PackageResponse struct {
	ID           kernel.UUID
	Name         string
	Description  string
	PackageType  catalog.PackageType
	Quantity     int
	Price        kernel.Money
	DeliveryTime string
	Popular      bool
	CreatedAt    time.Time
}
