package repository

import (
	"Quizfeed/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userID, videoID string) error
	// GetLikedVideoIDs 在 videoIDs 范围内筛出 userID 点过赞的视频，一次批量查询
	GetLikedVideoIDs(ctx context.Context, userID string, videoIDs []string) ([]string, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

func (s *LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	// 重复点赞静默幂等
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(like).Error
}

func (s *LikeRepoImpl) DeleteLike(ctx context.Context, userID, videoID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.Like{}).Error
}

func (s *LikeRepoImpl) GetLikedVideoIDs(ctx context.Context, userID string, videoIDs []string) ([]string, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND video_id IN ?", userID, videoIDs).
		Pluck("video_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
