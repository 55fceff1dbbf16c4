package service

import (
	"Quizfeed/internal/api/dto"
	"Quizfeed/internal/model"
	"Quizfeed/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPostService(db *gorm.DB) PostService {
	return NewPostService(
		repository.NewPostRepo(db),
		repository.NewVideoRepo(db),
		nil,
		nil,
	)
}

func TestCreatePost(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	req := &dto.CreatePostDTO{
		Caption:     "my first clip",
		VideoURL:    "https://cdn.example.com/v.mp4",
		CoverURL:    "https://cdn.example.com/c.jpg",
		VideoWidth:  1080,
		VideoHeight: 1920,
	}

	created, err := svc.CreatePost(ctx, author.ID, req)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "my first clip", created.Caption)

	// 同事务落一条未完成的 Video
	var video model.Video
	require.NoError(t, db.First(&video, "user_id = ? AND post_id = ?", author.ID, created.ID).Error)
	require.False(t, video.Done)
	require.Nil(t, video.QuestionID)
	require.Nil(t, video.Score)
}

func TestCreatePostRequiresLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)

	_, err := svc.CreatePost(context.Background(), "", &dto.CreatePostDTO{})
	require.ErrorIs(t, err, UnauthorizedError)
}

func TestGotIt(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	created, err := svc.CreatePost(ctx, author.ID, &dto.CreatePostDTO{
		Caption:  "clip",
		VideoURL: "https://cdn.example.com/v.mp4",
		CoverURL: "https://cdn.example.com/c.jpg",
	})
	require.NoError(t, err)

	err = svc.GotIt(ctx, author.ID, &dto.GotItDTO{
		PostID:  created.ID,
		Caption: "What was the main idea?",
	})
	require.NoError(t, err)

	var video model.Video
	require.NoError(t, db.Preload("Question").
		First(&video, "user_id = ? AND post_id = ?", author.ID, created.ID).Error)
	require.True(t, video.Done)
	require.NotNil(t, video.Question)
	require.Equal(t, "What was the main idea?", video.Question.Caption)
}

func TestGotItMissingVideo(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)

	err := svc.GotIt(context.Background(), "nobody", &dto.GotItDTO{
		PostID:  "missing",
		Caption: "q",
	})
	require.ErrorIs(t, err, ErrVideoNotFound)

	// 失败时不留孤儿 Question
	var count int64
	require.NoError(t, db.Model(&model.Question{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAnswerQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	created, err := svc.CreatePost(ctx, author.ID, &dto.CreatePostDTO{
		Caption:  "clip",
		VideoURL: "https://cdn.example.com/v.mp4",
		CoverURL: "https://cdn.example.com/c.jpg",
	})
	require.NoError(t, err)

	// 不要求先 GotIt，直接打分也接受
	err = svc.AnswerQuestion(ctx, author.ID, &dto.AnswerQuestionDTO{
		PostID: created.ID,
		Score:  92.5,
	})
	require.NoError(t, err)

	var video model.Video
	require.NoError(t, db.First(&video, "user_id = ? AND post_id = ?", author.ID, created.ID).Error)
	require.NotNil(t, video.Score)
	require.Equal(t, 92.5, *video.Score)
	require.False(t, video.Done)
}

func TestAnswerQuestionMissingVideo(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)

	err := svc.AnswerQuestion(context.Background(), "nobody", &dto.AnswerQuestionDTO{
		PostID: "missing",
		Score:  50,
	})
	require.ErrorIs(t, err, ErrVideoNotFound)
}

func TestSearchPostWithoutIndex(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)

	results, err := svc.SearchPost(context.Background(), "anything", 1, 10)
	require.NoError(t, err)
	require.Empty(t, results)
}
