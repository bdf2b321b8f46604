package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("CreateAndGetByID", func(t *testing.T) {
		user := &models.User{
			Handle:   "@inkling",
			Email:    "inkling@example.com",
			Password: "hashed",
		}
		require.NoError(t, repo.Create(ctx, user))
		require.NotZero(t, user.ID)

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "@inkling", got.Handle)
		assert.Equal(t, 0, got.FollowersCount)
	})

	t.Run("DuplicateHandleConflicts", func(t *testing.T) {
		dup := &models.User{
			Handle:   "@inkling",
			Email:    "other@example.com",
			Password: "hashed",
		}
		err := repo.Create(ctx, dup)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("GetByEmailMissingReturnsNil", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("GetByHandle", func(t *testing.T) {
		got, err := repo.GetByHandle(ctx, "@inkling")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "inkling@example.com", got.Email)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 99999)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("Update", func(t *testing.T) {
		got, err := repo.GetByHandle(ctx, "@inkling")
		require.NoError(t, err)

		got.Bio = "Writes about writing."
		require.NoError(t, repo.Update(ctx, got))

		updated, err := repo.GetByID(ctx, got.ID)
		require.NoError(t, err)
		assert.Equal(t, "Writes about writing.", updated.Bio)
	})

	t.Run("List", func(t *testing.T) {
		createTestUser(t, db)
		users, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(users), 2)
	})
}
