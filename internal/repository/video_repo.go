package repository

import (
	"Quizfeed/internal/model"
	"context"

	"gorm.io/gorm"
)

type VideoRepo interface {
	// FeedPage 按创建时间升序取一页，ownerIDs 为空表示不限作者
	FeedPage(ctx context.Context, ownerIDs []string, limit, offset int) ([]*model.Video, error)
	GetVideo(ctx context.Context, userID, postID string) (*model.Video, error)
	ExistsVideo(ctx context.Context, videoID string) (bool, error)
	// CompleteQuiz 新建 Question 并标记 Video 完成，同一事务内完成；
	// Video 不存在时返回 gorm.ErrRecordNotFound 并回滚 Question
	CompleteQuiz(ctx context.Context, question *model.Question, userID, postID string) error
	UpdateScore(ctx context.Context, userID, postID string, score float64) error
	SyncLikesCount(ctx context.Context) error
}

type VideoRepoImpl struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &VideoRepoImpl{db: db}
}

func (s *VideoRepoImpl) FeedPage(ctx context.Context, ownerIDs []string, limit, offset int) ([]*model.Video, error) {
	var videos []*model.Video
	query := s.db.WithContext(ctx).
		Preload("User").
		Preload("Post").
		Preload("Question")

	if len(ownerIDs) > 0 {
		query = query.Where("user_id IN ?", ownerIDs)
	}

	err := query.
		Order("created_at asc").
		Limit(limit).
		Offset(offset).
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *VideoRepoImpl) GetVideo(ctx context.Context, userID, postID string) (*model.Video, error) {
	var video model.Video
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *VideoRepoImpl) ExistsVideo(ctx context.Context, videoID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", videoID).
		Count(&count).Error
	return count > 0, err
}

func (s *VideoRepoImpl) CompleteQuiz(ctx context.Context, question *model.Question, userID, postID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}

		result := tx.Model(&model.Video{}).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Updates(map[string]interface{}{
				"done":        true,
				"question_id": question.ID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *VideoRepoImpl) UpdateScore(ctx context.Context, userID, postID string, score float64) error {
	result := s.db.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Update("score", score)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SyncLikesCount 由定时任务调用，回填点赞计数
func (s *VideoRepoImpl) SyncLikesCount(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec(
		"UPDATE videos SET likes_count = (SELECT COUNT(*) FROM likes WHERE likes.video_id = videos.id)",
	).Error
}
