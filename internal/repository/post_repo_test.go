package repository

import (
	"Quizfeed/internal/model"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestCreatePostWithVideo(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	post := &model.Post{
		ID:          uuid.NewString(),
		Caption:     "first post",
		VideoURL:    "https://cdn.example.com/v.mp4",
		CoverURL:    "https://cdn.example.com/c.jpg",
		VideoWidth:  720,
		VideoHeight: 1280,
	}
	video := &model.Video{ID: uuid.NewString(), UserID: user.ID}

	require.NoError(t, repo.CreatePostWithVideo(ctx, post, video))
	require.Equal(t, post.ID, video.PostID)

	var got model.Video
	require.NoError(t, db.First(&got, "id = ?", video.ID).Error)
	require.Equal(t, user.ID, got.UserID)
	require.Equal(t, post.ID, got.PostID)
	require.False(t, got.Done)
	require.Nil(t, got.QuestionID)
	require.Nil(t, got.Score)
}

func TestCreateVideoIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice")
	post := &model.Post{
		ID:       uuid.NewString(),
		Caption:  "first post",
		VideoURL: "https://cdn.example.com/v.mp4",
		CoverURL: "https://cdn.example.com/c.jpg",
	}
	require.NoError(t, repo.CreatePostWithVideo(ctx, post, &model.Video{ID: uuid.NewString(), UserID: user.ID}))

	// 同一 (user_id, post_id) 再插一条，唯一键冲突空更新
	dup := &model.Video{ID: uuid.NewString(), UserID: user.ID, PostID: post.ID}
	require.NoError(t, db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(dup).Error)

	var count int64
	require.NoError(t, db.Model(&model.Video{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGetPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ctx := context.Background()

	seeded := seedPost(t, db, "hello")
	got, err := repo.GetPost(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, "hello", got.Caption)

	_, err = repo.GetPost(ctx, uuid.NewString())
	require.Error(t, err)
}
