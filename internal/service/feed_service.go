package service

import (
	"Quizfeed/internal/api/dto"
	"Quizfeed/internal/model"
	"Quizfeed/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

// FeedPageSize 每页固定 4 条
const FeedPageSize = 4

type FeedService interface {
	// ForYou 公共时间流，userID 为空串表示匿名访问
	ForYou(ctx context.Context, userID string, cursor int) (*dto.FeedPageDTO, error)
	// Following 关注流，要求已登录
	Following(ctx context.Context, userID string, cursor int) (*dto.FeedPageDTO, error)
}

type feedServiceImpl struct {
	videoRepo     repository.VideoRepo
	likeRepo      repository.LikeRepo
	followRepo    repository.UserFollowRepo
	userFollowSvc UserFollowService
}

func NewFeedService(
	videoRepo repository.VideoRepo,
	likeRepo repository.LikeRepo,
	followRepo repository.UserFollowRepo,
	userFollowSvc UserFollowService,
) FeedService {
	return &feedServiceImpl{
		videoRepo:     videoRepo,
		likeRepo:      likeRepo,
		followRepo:    followRepo,
		userFollowSvc: userFollowSvc,
	}
}

// ForYou 不过滤 done 状态，所有视频按创建时间升序进入公共流
func (s *feedServiceImpl) ForYou(ctx context.Context, userID string, cursor int) (*dto.FeedPageDTO, error) {
	videos, err := s.videoRepo.FeedPage(ctx, nil, FeedPageSize, cursor)
	if err != nil {
		return nil, err
	}

	likedSet, followedSet, err := s.lookupEdges(ctx, userID, videos)
	if err != nil {
		return nil, err
	}

	return s.buildPage(videos, cursor, likedSet, followedSet), nil
}

func (s *feedServiceImpl) Following(ctx context.Context, userID string, cursor int) (*dto.FeedPageDTO, error) {
	if userID == "" {
		return nil, UnauthorizedError
	}

	followingIDs, err := s.userFollowSvc.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followingIDs) == 0 {
		return &dto.FeedPageDTO{Items: []*dto.FeedItemDTO{}}, nil
	}

	videos, err := s.videoRepo.FeedPage(ctx, followingIDs, FeedPageSize, cursor)
	if err != nil {
		return nil, err
	}

	// 关注流内的作者必然已被关注，无需再查 follows 表
	followedSet := make(map[string]struct{}, len(followingIDs))
	for _, id := range followingIDs {
		followedSet[id] = struct{}{}
	}

	likedSet, err := s.lookupLikes(ctx, userID, videos)
	if err != nil {
		return nil, err
	}

	return s.buildPage(videos, cursor, likedSet, followedSet), nil
}

// lookupEdges 用本页出现的 id 做两次批量查询，避免逐条回表
func (s *feedServiceImpl) lookupEdges(ctx context.Context, userID string, videos []*model.Video) (map[string]struct{}, map[string]struct{}, error) {
	if userID == "" || len(videos) == 0 {
		return nil, nil, nil
	}

	ownerIDs := make([]string, 0, len(videos))
	seen := make(map[string]struct{}, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.UserID]; !ok {
			seen[v.UserID] = struct{}{}
			ownerIDs = append(ownerIDs, v.UserID)
		}
	}

	followedIDs, err := s.followRepo.GetFollowedIDs(ctx, userID, ownerIDs)
	if err != nil {
		return nil, nil, err
	}
	followedSet := make(map[string]struct{}, len(followedIDs))
	for _, id := range followedIDs {
		followedSet[id] = struct{}{}
	}

	likedSet, err := s.lookupLikes(ctx, userID, videos)
	if err != nil {
		return nil, nil, err
	}

	return likedSet, followedSet, nil
}

func (s *feedServiceImpl) lookupLikes(ctx context.Context, userID string, videos []*model.Video) (map[string]struct{}, error) {
	if userID == "" || len(videos) == 0 {
		return nil, nil
	}

	videoIDs := make([]string, 0, len(videos))
	for _, v := range videos {
		videoIDs = append(videoIDs, v.ID)
	}

	likedIDs, err := s.likeRepo.GetLikedVideoIDs(ctx, userID, videoIDs)
	if err != nil {
		return nil, err
	}
	likedSet := make(map[string]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = struct{}{}
	}
	return likedSet, nil
}

func (s *feedServiceImpl) buildPage(videos []*model.Video, cursor int, likedSet, followedSet map[string]struct{}) *dto.FeedPageDTO {
	items := make([]*dto.FeedItemDTO, 0, len(videos))
	for _, v := range videos {
		items = append(items, s.toFeedItem(v, likedSet, followedSet))
	}

	page := &dto.FeedPageDTO{Items: items}
	if len(items) > 0 {
		next := cursor + FeedPageSize
		page.NextSkip = &next
	}
	return page
}

func (s *feedServiceImpl) toFeedItem(video *model.Video, likedSet, followedSet map[string]struct{}) *dto.FeedItemDTO {
	item := &dto.FeedItemDTO{}
	_ = copier.Copy(item, video)
	item.CreatedAt = video.CreatedAt.Format(time.RFC3339)

	item.User = &dto.UserDTO{
		ID:    video.User.ID,
		Name:  video.User.Name,
		Image: video.User.Image,
	}

	post := &dto.PostDTO{}
	_ = copier.Copy(post, &video.Post)
	post.CreatedAt = video.Post.CreatedAt.Format(time.RFC3339)
	item.Post = post

	if video.Question != nil {
		item.Question = &dto.QuestionDTO{
			ID:      video.Question.ID,
			Caption: video.Question.Caption,
		}
	}

	if likedSet != nil {
		_, item.LikedByMe = likedSet[video.ID]
	}
	if followedSet != nil {
		_, item.FollowedByMe = followedSet[video.UserID]
	}
	return item
}
