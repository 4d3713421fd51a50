package commands

import (
	"context"

	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"
)

// defaultPackage describes one entry of the default catalog.
type defaultPackage struct {
	name         string
	description  string
	quantity     int
	priceCents   int64
	deliveryTime string
	popular      bool
}

// getDefaultPackages returns the five stock follower offers.
func getDefaultPackages() []defaultPackage {
	return []defaultPackage{
		{
			name:         "100 Seguidores",
			description:  "Ideal para começar! 100 seguidores brasileiros de qualidade.",
			quantity:     100,
			priceCents:   990,
			deliveryTime: "1-2 horas",
		},
		{
			name:         "500 Seguidores",
			description:  "Mais popular! 500 seguidores brasileiros ativos.",
			quantity:     500,
			priceCents:   2990,
			deliveryTime: "2-6 horas",
			popular:      true,
		},
		{
			name:         "1.000 Seguidores",
			description:  "Plano premium com 1.000 seguidores de alta qualidade.",
			quantity:     1000,
			priceCents:   4990,
			deliveryTime: "6-12 horas",
		},
		{
			name:         "2.500 Seguidores",
			description:  "Para quem quer crescer rápido! 2.500 seguidores reais.",
			quantity:     2500,
			priceCents:   9990,
			deliveryTime: "12-24 horas",
		},
		{
			name:         "5.000 Seguidores",
			description:  "Pacote profissional com 5.000 seguidores brasileiros.",
			quantity:     5000,
			priceCents:   17990,
			deliveryTime: "24-48 horas",
		},
	}
}

// SeedCatalogCommandHandler provisions the default catalog once.
type SeedCatalogCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewSeedCatalogCommandHandler creates a handler for catalog seeding.
func NewSeedCatalogCommandHandler(uowFactory PackageUoWFactory) SeedCatalogCommandHandler {
	return SeedCatalogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle seeds the default packages and returns how many were created.
// Returns 0 without writing anything when the catalog is already populated.
func (h *SeedCatalogCommandHandler) Handle(ctx context.Context, cmd SeedCatalogCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	existing, err := uow.PackageRepository().Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()
	defaults := getDefaultPackages()
	for _, entry := range defaults {
		newPackage, pkgErr := catalog.NewPackage(
			kernel.NewUUID(),
			entry.name, entry.description,
			catalog.Followers, entry.quantity, kernel.NewMoneyFromCents(entry.priceCents),
			entry.deliveryTime, entry.popular,
		)
		if pkgErr != nil {
			return 0, pkgErr
		}

		if addErr := repo.Add(ctx, newPackage); addErr != nil {
			return 0, addErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(defaults), nil
}
