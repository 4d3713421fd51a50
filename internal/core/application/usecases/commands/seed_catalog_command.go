package commands

import (
	"errors"

	"instagrow/internal/pkg/guard"
)

var (
	ErrSeedCatalogCommandIsNotConstructed = errors.New(
		"SeedCatalogCommand must be created via NewSeedCatalogCommand constructor",
	)
)

// SeedCatalogCommand provisions the default follower packages. Seeding is
// idempotent: it does nothing when the catalog already has entries.
type SeedCatalogCommand struct {
	guard guard.ConstructorGuard
}

// NewSeedCatalogCommand creates a command to seed the default catalog.
func NewSeedCatalogCommand() SeedCatalogCommand {
	return SeedCatalogCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SeedCatalogCommand) Validate() error {
	return c.guard.Validate(ErrSeedCatalogCommandIsNotConstructed)
}
