package commands_test

import (
	"testing"

	"instagrow/internal/core/application/usecases/commands"
	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreatePackageCommand(t *testing.T) commands.CreatePackageCommand {
	t.Helper()

	cmd, err := commands.NewCreatePackageCommand(
		"100 Seguidores", "Ideal para começar!",
		catalog.Followers, 100, kernel.NewMoneyFromCents(990), "1-2 horas", false,
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreatePackageCommand_Valid(t *testing.T) {
	cmd := validCreatePackageCommand(t)

	require.NoError(t, cmd.Validate())
	assert.Equal(t, "100 Seguidores", cmd.Name())
	assert.Equal(t, catalog.Followers, cmd.PackageType())
	assert.Equal(t, 100, cmd.Quantity())
	assert.Equal(t, "9.90", cmd.Price().String())
}

func TestNewCreatePackageCommand_Invalid(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand(
			"", "desc", catalog.Followers, 100, kernel.NewMoneyFromCents(990), "1-2 horas", false)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand(
			"100 Seguidores", "desc", catalog.Followers, 0, kernel.NewMoneyFromCents(990), "1-2 horas", false)

		require.Error(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand(
			"100 Seguidores", "desc", catalog.Followers, 100, kernel.NewMoneyFromCents(-990), "1-2 horas", false)

		require.Error(t, err)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand(
			"100 Seguidores", "desc", catalog.UnknownType, 100, kernel.NewMoneyFromCents(990), "1-2 horas", false)

		require.Error(t, err)
	})
}

func TestCreatePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreatePackageCommand(t)

	repo := new(MockPackageRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*catalog.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePackageCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "100 Seguidores", created.Name())
	repo.AssertExpectations(t)
}

func TestUpdatePackageCommandHandler_Handle_KeepsIdentity(t *testing.T) {
	ctx := t.Context()
	existing := newTestPackage(2990)
	fields := validCreatePackageCommand(t)
	cmd, err := commands.NewUpdatePackageCommand(existing.ID(), fields)
	require.NoError(t, err)

	repo := new(MockPackageRepository)
	uow := new(MockUoW)
	uow.On("PackageRepository").Return(repo)
	repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*catalog.Package")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePackageCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, updated.ID().IsEqual(existing.ID()))
	assert.Equal(t, "100 Seguidores", updated.Name())
	assert.Equal(t, existing.CreatedAt(), updated.CreatedAt())
}

func TestRemovePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestPackage(2990)
	cmd, err := commands.NewRemovePackageCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockPackageRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(repo).Once(),
		repo.On("Remove", ctx, existing.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemovePackageCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
