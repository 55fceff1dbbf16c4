package service

import (
	"Quizfeed/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFollowSelf(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserFollowService(repository.NewUserFollowRepo(db))

	alice := seedUser(t, db, "alice")
	err := svc.Follow(context.Background(), alice.ID, alice.ID)
	require.ErrorIs(t, err, ErrUserFollowSelf)
}

func TestFollowTwice(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserFollowService(repository.NewUserFollowRepo(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
	err := svc.Follow(ctx, alice.ID, bob.ID)
	require.ErrorIs(t, err, ErrUserFollowExist)
}

func TestFollowThenUnfollow(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserFollowService(repository.NewUserFollowRepo(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
	ids, err := svc.GetFollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, []string{bob.ID}, ids)

	require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))
	ids, err = svc.GetFollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}
