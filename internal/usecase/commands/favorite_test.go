//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"skipass-api/internal/infra"
	commandsmock "skipass-api/internal/mock/commands"
	sharedmock "skipass-api/internal/mock/shared"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/testutil/builder"
	"skipass-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFavoriteCommands_Add(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: known resort is added", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockFavoriteStore(ctrl)
		resorts := commandsmock.NewMockResortLookup(ctrl)
		resort := builder.NewResortBuilder().BuildView()
		resorts.EXPECT().FindByID(gomock.Any(), resort.ID).Return(resort, nil)
		store.EXPECT().Add(gomock.Any(), userID, resort.ID).Return(nil)

		err := commands.NewFavoriteCommands(store, resorts).Add(ctx, userID, resort.ID)

		require.NoError(t, err)
	})

	t.Run("error: unknown resort is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockFavoriteStore(ctrl)
		resorts := commandsmock.NewMockResortLookup(ctrl)
		id := uuid.New()
		resorts.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("resort not found", nil, infra.KindNotFound))

		err := commands.NewFavoriteCommands(store, resorts).Add(ctx, userID, id)

		assert.True(t, errs.Is(err, errs.ErrResortNotFound))
	})

	t.Run("error: redis failure is collaborator unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockFavoriteStore(ctrl)
		resorts := commandsmock.NewMockResortLookup(ctrl)
		resort := builder.NewResortBuilder().BuildView()
		resorts.EXPECT().FindByID(gomock.Any(), resort.ID).Return(resort, nil)
		store.EXPECT().Add(gomock.Any(), userID, resort.ID).
			Return(infra.WrapRepoErr("failed to add favorite", errors.New("down"), infra.KindCacheFailure))

		err := commands.NewFavoriteCommands(store, resorts).Add(ctx, userID, resort.ID)

		assert.True(t, errs.Is(err, errs.ErrCollaboratorUnavailable))
	})

	t.Run("error: no identity is unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commands.NewFavoriteCommands(sharedmock.NewMockFavoriteStore(ctrl), commandsmock.NewMockResortLookup(ctrl))

		err := cmds.Add(ctx, uuid.Nil, uuid.New())

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})
}

func TestFavoriteCommands_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockFavoriteStore(ctrl)
	userID, resortID := uuid.New(), uuid.New()
	store.EXPECT().Remove(gomock.Any(), userID, resortID).Return(nil)

	err := commands.NewFavoriteCommands(store, commandsmock.NewMockResortLookup(ctrl)).Remove(context.Background(), userID, resortID)

	require.NoError(t, err)
}
