package repository

import (
	"Quizfeed/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserFollowRepo interface {
	// GetFollowingIDs 获取 followerID 关注的全部用户 ID
	GetFollowingIDs(ctx context.Context, followerID string) ([]string, error)
	// GetFollowedIDs 在 candidateIDs 范围内筛出 followerID 已关注的用户，一次批量查询
	GetFollowedIDs(ctx context.Context, followerID string, candidateIDs []string) ([]string, error)
	GetFollow(ctx context.Context, followerID, followingID string) (*model.Follow, error)
	CreateFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, followerID, followingID string) error
}

type UserFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepo(db *gorm.DB) UserFollowRepo {
	return &UserFollowRepoImpl{db: db}
}

func (s *UserFollowRepoImpl) GetFollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *UserFollowRepoImpl) GetFollowedIDs(ctx context.Context, followerID string, candidateIDs []string) ([]string, error) {
	if len(candidateIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND following_id IN ?", followerID, candidateIDs).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *UserFollowRepoImpl) GetFollow(ctx context.Context, followerID, followingID string) (*model.Follow, error) {
	var follow model.Follow
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

func (s *UserFollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow).Error
}

func (s *UserFollowRepoImpl) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{}).Error
}
