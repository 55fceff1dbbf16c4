package service

import (
	"Quizfeed/internal/model"
	"Quizfeed/internal/pkg/consts"
	"Quizfeed/internal/pkg/redis"
	"Quizfeed/internal/repository"
	"context"
	log "log/slog"
	"time"
)

const followingCacheTTL = time.Hour

type UserFollowService interface {
	// GetFollowingIDs 关注集合，Redis 读穿透缓存
	GetFollowingIDs(ctx context.Context, userID string) ([]string, error)
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
}

type UserFollowServiceImpl struct {
	userFollowRepo repository.UserFollowRepo
}

func NewUserFollowService(userFollowRepo repository.UserFollowRepo) UserFollowService {
	return &UserFollowServiceImpl{userFollowRepo: userFollowRepo}
}

func (s *UserFollowServiceImpl) GetFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	key := consts.UserFollowingKey + userID

	cached, err := redis.GetSet(ctx, key)
	if err == nil && len(cached) > 0 {
		return cached, nil
	}

	ids, err := s.userFollowRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		if err = redis.SAddWithExpiration(ctx, key, ids, followingCacheTTL); err != nil {
			log.WarnContext(ctx, "cache following ids failed", "err", err)
		}
	}
	return ids, nil
}

func (s *UserFollowServiceImpl) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return ErrUserFollowSelf
	}

	follow, err := s.userFollowRepo.GetFollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if follow != nil {
		return ErrUserFollowExist
	}

	err = s.userFollowRepo.CreateFollow(ctx, &model.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return err
	}

	return redis.DeleteKey(ctx, consts.UserFollowingKey+followerID)
}

func (s *UserFollowServiceImpl) Unfollow(ctx context.Context, followerID, followingID string) error {
	if err := s.userFollowRepo.DeleteFollow(ctx, followerID, followingID); err != nil {
		return err
	}
	return redis.DeleteKey(ctx, consts.UserFollowingKey+followerID)
}
