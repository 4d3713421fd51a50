package commands

import (
	"errors"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/guard"
)

var (
	ErrUpdatePackageCommandIsNotConstructed = errors.New(
		"UpdatePackageCommand must be created via NewUpdatePackageCommand constructor",
	)
)

// UpdatePackageCommand represents an admin request to replace the fields of
// an existing catalog package. Existing orders are unaffected: they carry
// their own snapshot of the fields they were sold with.
type UpdatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	fields    CreatePackageCommand

	guard guard.ConstructorGuard
}

// NewUpdatePackageCommand creates a command to update a catalog package.
// The replacement fields are validated with the same rules as creation.
func NewUpdatePackageCommand(packageID kernel.UUID, fields CreatePackageCommand) (UpdatePackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return UpdatePackageCommand{}, err
	}
	if err := fields.Validate(); err != nil {
		return UpdatePackageCommand{}, err
	}

	return UpdatePackageCommand{
		packageID: packageID,
		fields:    fields,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePackageCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to update.
func (c UpdatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Fields returns the validated replacement fields.
func (c UpdatePackageCommand) Fields() CreatePackageCommand {
	return c.fields
}
