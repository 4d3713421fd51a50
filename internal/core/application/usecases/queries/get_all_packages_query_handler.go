package queries

import (
	"context"
	"time"

	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const packageColumns = `
	id,
	name,
	description,
	type,
	quantity,
	price_cents,
	delivery_time,
	popular,
	created_at
`

// scanPackageRow maps one packages row onto a PackageResponse.
func scanPackageRow(scanner rowScanner) (PackageResponse, error) {
	var resp PackageResponse
	var id uuid.UUID
	var packageType int
	var priceCents int64
	var createdAt time.Time

	if err := scanner.Scan(
		&id,
		&resp.Name,
		&resp.Description,
		&packageType,
		&resp.Quantity,
		&priceCents,
		&resp.DeliveryTime,
		&resp.Popular,
		&createdAt,
	); err != nil {
		return PackageResponse{}, err
	}

	packageID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return PackageResponse{}, err
	}
	resp.ID = packageID

	resp.PackageType = catalog.PackageType(packageType)
	resp.Price = kernel.NewMoneyFromCents(priceCents)
	resp.CreatedAt = createdAt
	return resp, nil
}

// GetAllPackagesQueryHandler retrieves the full catalog, cheapest first so the
// storefront can render the price ladder without re-sorting.
type GetAllPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPackagesQueryHandler creates a handler for the catalog query.
func NewGetAllPackagesQueryHandler(db *gorm.DB) GetAllPackagesQueryHandler {
	return GetAllPackagesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetAllPackagesQuery,
) ([]PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := make([]PackageResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+packageColumns+`
		FROM packages
		ORDER BY price_cents, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanPackageRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		packages = append(packages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
