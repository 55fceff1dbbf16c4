package service

import (
	"Quizfeed/internal/model"
	"Quizfeed/internal/repository"
	"context"
	"time"
)

type PostActionService interface {
	LikeVideo(ctx context.Context, userID, videoID string) error
	UnlikeVideo(ctx context.Context, userID, videoID string) error
}

type postActionServiceImpl struct {
	likeRepo  repository.LikeRepo
	videoRepo repository.VideoRepo
}

func NewPostActionService(likeRepo repository.LikeRepo, videoRepo repository.VideoRepo) PostActionService {
	return &postActionServiceImpl{
		likeRepo:  likeRepo,
		videoRepo: videoRepo,
	}
}

func (s *postActionServiceImpl) LikeVideo(ctx context.Context, userID, videoID string) error {
	exists, err := s.videoRepo.ExistsVideo(ctx, videoID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrVideoNotFound
	}

	return s.likeRepo.CreateLike(ctx, &model.Like{
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: time.Now(),
	})
}

func (s *postActionServiceImpl) UnlikeVideo(ctx context.Context, userID, videoID string) error {
	return s.likeRepo.DeleteLike(ctx, userID, videoID)
}
