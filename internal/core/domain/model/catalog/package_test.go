package catalog_test

import (
	"testing"
	"time"

	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	t.Run("should create valid package", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := catalog.NewPackage(
			id, "500 Seguidores", "Mais popular! 500 seguidores brasileiros ativos.",
			catalog.Followers, 500, kernel.NewMoneyFromCents(2990), "2-6 horas", true,
		)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "500 Seguidores", p.Name())
		assert.Equal(t, catalog.Followers, p.Type())
		assert.Equal(t, 500, p.Quantity())
		assert.Equal(t, "29.90", p.Price().String())
		assert.Equal(t, "2-6 horas", p.DeliveryTime())
		assert.True(t, p.Popular())
		assert.False(t, p.CreatedAt().IsZero())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := catalog.NewPackage(
			kernel.NewUUID(), "  ", "desc",
			catalog.Followers, 100, kernel.NewMoneyFromCents(990), "1-2 horas", false,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := catalog.NewPackage(
				kernel.NewUUID(), "100 Seguidores", "desc",
				catalog.Followers, quantity, kernel.NewMoneyFromCents(990), "1-2 horas", false,
			)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := catalog.NewPackage(
			kernel.NewUUID(), "100 Seguidores", "desc",
			catalog.Followers, 100, kernel.NewMoneyFromCents(-1), "1-2 horas", false,
		)

		require.Error(t, err)
	})

	t.Run("should allow zero price", func(t *testing.T) {
		_, err := catalog.NewPackage(
			kernel.NewUUID(), "Brinde", "desc",
			catalog.Followers, 10, kernel.NewMoneyFromCents(0), "1-2 horas", false,
		)

		require.NoError(t, err)
	})

	t.Run("should reject invalid type", func(t *testing.T) {
		_, err := catalog.NewPackage(
			kernel.NewUUID(), "100 Seguidores", "desc",
			catalog.UnknownType, 100, kernel.NewMoneyFromCents(990), "1-2 horas", false,
		)

		require.Error(t, err)
	})
}

func TestPackage_Validate(t *testing.T) {
	t.Run("should reject package not created via constructor", func(t *testing.T) {
		var p catalog.Package

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, catalog.ErrPackageIsNotConstructed, err)
	})
}

func TestRestorePackage(t *testing.T) {
	t.Run("should rebuild package from stored state", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-24 * time.Hour)

		p, err := catalog.RestorePackage(
			id, "1.000 Seguidores", "Plano premium.",
			catalog.Followers, 1000, kernel.NewMoneyFromCents(4990), "6-12 horas", false, createdAt,
		)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, createdAt, p.CreatedAt())
	})
}

func TestPackageTypeFromString(t *testing.T) {
	t.Run("should parse valid labels", func(t *testing.T) {
		testCases := map[string]catalog.PackageType{
			"followers": catalog.Followers,
			"likes":     catalog.Likes,
			"views":     catalog.Views,
			"comments":  catalog.Comments,
		}

		for label, expected := range testCases {
			packageType, err := catalog.PackageTypeFromString(label)

			require.NoError(t, err)
			assert.Equal(t, expected, packageType)
			assert.Equal(t, label, packageType.String())
		}
	})

	t.Run("should reject unknown labels", func(t *testing.T) {
		_, err := catalog.PackageTypeFromString("subscribers")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
