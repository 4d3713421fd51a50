package commands

import (
	"errors"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/guard"
)

var (
	ErrRemovePackageCommandIsNotConstructed = errors.New(
		"RemovePackageCommand must be created via NewRemovePackageCommand constructor",
	)
)

// RemovePackageCommand represents an admin request to retire a catalog
// package. Orders created from the package keep their snapshot and remain
// fully readable after removal.
type RemovePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemovePackageCommand creates a command to remove a catalog package.
func NewRemovePackageCommand(packageID kernel.UUID) (RemovePackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return RemovePackageCommand{}, err
	}

	return RemovePackageCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePackageCommand) Validate() error {
	return c.guard.Validate(ErrRemovePackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to remove.
func (c RemovePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}
