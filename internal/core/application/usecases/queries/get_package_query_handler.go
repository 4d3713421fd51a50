package queries

import (
	"context"
	"database/sql"
	"errors"

	"instagrow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPackageQueryHandler retrieves a single catalog package from the database.
type GetPackageQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageQueryHandler creates a handler for the single-package query.
func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

// Handle executes the query.
func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) (PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return PackageResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+packageColumns+`
		FROM packages
		WHERE id = ?
	`, query.PackageID().Bytes()).Row()

	resp, err := scanPackageRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PackageResponse{}, errs.NewObjectNotFoundError("packageID", query.PackageID())
		}
		return PackageResponse{}, err
	}

	return resp, nil
}
