package ports

import (
	"context"

	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"
)

// PackageRepository defines the persistence contract for catalog packages.
// Package mutations never touch existing orders: orders carry their own
// snapshot of the package fields they were sold with.
type PackageRepository interface {
	// Add persists a new catalog package.
	Add(ctx context.Context, aggregate *catalog.Package) error

	// Update replaces the stored fields of an existing package.
	// Returns an ObjectNotFoundError when the id is unknown.
	Update(ctx context.Context, aggregate *catalog.Package) error

	// Remove deletes a package from the catalog.
	// Returns an ObjectNotFoundError when the id is unknown.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves a package by its unique identifier.
	// Returns an ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Package, error)

	// GetAll retrieves the full catalog.
	GetAll(ctx context.Context) ([]*catalog.Package, error)

	// Count returns the number of provisioned packages. Used by catalog
	// seeding to stay idempotent.
	Count(ctx context.Context) (int64, error)
}
