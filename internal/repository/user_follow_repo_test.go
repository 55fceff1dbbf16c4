package repository

import (
	"Quizfeed/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFollowLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserFollowRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	follow, err := repo.GetFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Nil(t, follow)

	require.NoError(t, repo.CreateFollow(ctx, &model.Follow{
		FollowerID:  alice.ID,
		FollowingID: bob.ID,
		CreatedAt:   time.Now(),
	}))
	// 重复关注静默幂等
	require.NoError(t, repo.CreateFollow(ctx, &model.Follow{
		FollowerID:  alice.ID,
		FollowingID: bob.ID,
		CreatedAt:   time.Now(),
	}))

	ids, err := repo.GetFollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, []string{bob.ID}, ids)

	require.NoError(t, repo.DeleteFollow(ctx, alice.ID, bob.ID))
	ids, err = repo.GetFollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestGetFollowedIDsBatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserFollowRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	require.NoError(t, repo.CreateFollow(ctx, &model.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))

	ids, err := repo.GetFollowedIDs(ctx, alice.ID, []string{bob.ID, carol.ID})
	require.NoError(t, err)
	require.Equal(t, []string{bob.ID}, ids)

	ids, err = repo.GetFollowedIDs(ctx, alice.ID, nil)
	require.NoError(t, err)
	require.Empty(t, ids)
}
