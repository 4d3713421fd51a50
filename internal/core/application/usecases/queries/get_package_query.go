package queries

import (
	"errors"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/errs"
	"instagrow/internal/pkg/guard"
)

var (
	ErrGetPackageQueryIsNotConstructed = errors.New(
		"GetPackageQuery must be created via NewGetPackageQuery constructor",
	)
)

// GetPackageQuery retrieves a single catalog package by its identifier.
type GetPackageQuery struct {
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query to retrieve one package.
func NewGetPackageQuery(packageID kernel.UUID) (GetPackageQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPackageQuery{}, errs.NewValueIsRequiredErrorWithCause("packageID", err)
	}

	return GetPackageQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PackageID returns the identifier of the package to retrieve.
func (q GetPackageQuery) PackageID() kernel.UUID {
	return q.packageID
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}
