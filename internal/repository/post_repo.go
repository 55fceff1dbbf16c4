package repository

import (
	"Quizfeed/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo interface {
	// CreatePostWithVideo 建帖并为作者落一条 Video 记录，同一事务内完成
	CreatePostWithVideo(ctx context.Context, post *model.Post, video *model.Video) error
	GetPost(ctx context.Context, id string) (*model.Post, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePostWithVideo(ctx context.Context, post *model.Post, video *model.Video) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		video.PostID = post.ID
		// video_identifier 唯一键冲突时空更新，重复调用幂等
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).Create(video).Error
	})
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}
