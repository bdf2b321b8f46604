package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	carol := createTestUser(t, db)

	t.Run("FollowCreatesSingleEdge", func(t *testing.T) {
		require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

		following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, following)

		reverse, err := repo.IsFollowing(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.False(t, reverse)
	})

	t.Run("FollowTwiceIsNoOp", func(t *testing.T) {
		require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

		var count int64
		db.Model(&models.Follow{}).
			Where("follower_id = ? AND followee_id = ?", alice.ID, bob.ID).
			Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("BothViewsAgree", func(t *testing.T) {
		require.NoError(t, repo.Follow(ctx, carol.ID, bob.ID))

		followers, err := repo.Followers(ctx, bob.ID, 20, 0)
		require.NoError(t, err)
		require.Len(t, followers, 2)

		following, err := repo.Following(ctx, alice.ID, 20, 0)
		require.NoError(t, err)
		require.Len(t, following, 1)
		assert.Equal(t, bob.ID, following[0].ID)
	})

	t.Run("CountsReflectEdges", func(t *testing.T) {
		users := NewUserRepository(db)
		got, err := users.GetByID(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.FollowersCount)
		assert.Equal(t, 0, got.FollowingCount)
	})

	t.Run("UnfollowRemovesBothViews", func(t *testing.T) {
		require.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))

		following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, following)

		followers, err := repo.Followers(ctx, bob.ID, 20, 0)
		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, carol.ID, followers[0].ID)
	})

	t.Run("UnfollowTwiceIsNoOp", func(t *testing.T) {
		assert.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))
	})
}

func TestFollowReconcile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Follow(ctx, bob.ID, alice.ID))

	// Simulate an edge left behind by an interrupted account deletion.
	require.NoError(t, db.Exec("DELETE FROM users WHERE id = ?", bob.ID).Error)

	removed, err := repo.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// A second pass finds nothing to do.
	removed, err = repo.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}
