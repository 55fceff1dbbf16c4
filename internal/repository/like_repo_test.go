package repository

import (
	"Quizfeed/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLikeLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepo(db)
	ctx := context.Background()

	fan := seedUser(t, db, "bob")
	author := seedUser(t, db, "alice")
	video := seedVideo(t, db, author.ID, seedPost(t, db, "caption").ID, time.Now())

	require.NoError(t, repo.CreateLike(ctx, &model.Like{UserID: fan.ID, VideoID: video.ID}))
	// 重复点赞静默幂等
	require.NoError(t, repo.CreateLike(ctx, &model.Like{UserID: fan.ID, VideoID: video.ID}))

	ids, err := repo.GetLikedVideoIDs(ctx, fan.ID, []string{video.ID})
	require.NoError(t, err)
	require.Equal(t, []string{video.ID}, ids)

	require.NoError(t, repo.DeleteLike(ctx, fan.ID, video.ID))
	ids, err = repo.GetLikedVideoIDs(ctx, fan.ID, []string{video.ID})
	require.NoError(t, err)
	require.Empty(t, ids)
}
