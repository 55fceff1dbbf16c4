package service

import (
	"Quizfeed/internal/api/dto"
	"Quizfeed/internal/model"
	"Quizfeed/internal/pkg/es"
	"Quizfeed/internal/pkg/kafka"
	"Quizfeed/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type PostService interface {
	// CreatePost 建帖并为作者 upsert 一条未完成的 Video 记录
	CreatePost(ctx context.Context, userID string, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	// GotIt 观看完成，生成 Question 并标记 done
	GotIt(ctx context.Context, userID string, req *dto.GotItDTO) error
	// AnswerQuestion 记录得分，不校验 done 先后顺序
	AnswerQuestion(ctx context.Context, userID string, req *dto.AnswerQuestionDTO) error
	SearchPost(ctx context.Context, keyword string, page, pageSize int) ([]*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo   repository.PostRepo
	videoRepo  repository.VideoRepo
	postESRepo es.PostRepo
	producer   kafka.EventProducer
}

func NewPostService(
	postRepo repository.PostRepo,
	videoRepo repository.VideoRepo,
	postESRepo es.PostRepo,
	producer kafka.EventProducer,
) PostService {
	return &postServiceImpl{
		postRepo:   postRepo,
		videoRepo:  videoRepo,
		postESRepo: postESRepo,
		producer:   producer,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID string, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	if userID == "" {
		return nil, UnauthorizedError
	}

	post := &model.Post{
		ID:          uuid.NewString(),
		Caption:     req.Caption,
		VideoURL:    req.VideoURL,
		CoverURL:    req.CoverURL,
		VideoWidth:  req.VideoWidth,
		VideoHeight: req.VideoHeight,
	}
	video := &model.Video{
		ID:     uuid.NewString(),
		UserID: userID,
		Done:   false,
	}

	if err := s.postRepo.CreatePostWithVideo(ctx, post, video); err != nil {
		return nil, err
	}

	// 索引与事件是尽力而为，不影响主流程
	if s.postESRepo != nil {
		if err := s.postESRepo.IndexPost(ctx, &es.PostES{
			ID:          post.ID,
			UserID:      userID,
			Caption:     post.Caption,
			VideoURL:    post.VideoURL,
			CoverURL:    post.CoverURL,
			VideoWidth:  post.VideoWidth,
			VideoHeight: post.VideoHeight,
			CreatedAt:   post.CreatedAt,
		}); err != nil {
			log.WarnContext(ctx, "index post failed", "post_id", post.ID, "err", err)
		}
	}

	s.publish(ctx, &kafka.FeedEvent{
		Type:   kafka.EventPostCreated,
		UserID: userID,
		PostID: post.ID,
	})

	postDTO := &dto.PostDTO{}
	_ = copier.Copy(postDTO, post)
	postDTO.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	return postDTO, nil
}

func (s *postServiceImpl) GotIt(ctx context.Context, userID string, req *dto.GotItDTO) error {
	if userID == "" {
		return UnauthorizedError
	}

	question := &model.Question{
		ID:      uuid.NewString(),
		Caption: req.Caption,
	}

	err := s.videoRepo.CompleteQuiz(ctx, question, userID, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	s.publish(ctx, &kafka.FeedEvent{
		Type:       kafka.EventVideoGotIt,
		UserID:     userID,
		PostID:     req.PostID,
		QuestionID: question.ID,
	})
	return nil
}

func (s *postServiceImpl) AnswerQuestion(ctx context.Context, userID string, req *dto.AnswerQuestionDTO) error {
	if userID == "" {
		return UnauthorizedError
	}

	err := s.videoRepo.UpdateScore(ctx, userID, req.PostID, req.Score)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	s.publish(ctx, &kafka.FeedEvent{
		Type:   kafka.EventVideoScored,
		UserID: userID,
		PostID: req.PostID,
		Score:  &req.Score,
	})
	return nil
}

func (s *postServiceImpl) SearchPost(ctx context.Context, keyword string, page, pageSize int) ([]*dto.PostDTO, error) {
	if s.postESRepo == nil {
		return []*dto.PostDTO{}, nil
	}

	from := (page - 1) * pageSize
	docs, err := s.postESRepo.SearchPosts(ctx, keyword, from, pageSize)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.PostDTO, 0, len(docs))
	for _, doc := range docs {
		results = append(results, &dto.PostDTO{
			ID:          doc.ID,
			Caption:     doc.Caption,
			VideoURL:    doc.VideoURL,
			CoverURL:    doc.CoverURL,
			VideoWidth:  doc.VideoWidth,
			VideoHeight: doc.VideoHeight,
			CreatedAt:   doc.CreatedAt.Format(time.RFC3339),
		})
	}
	return results, nil
}

func (s *postServiceImpl) publish(ctx context.Context, event *kafka.FeedEvent) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Publish(ctx, event); err != nil {
		log.WarnContext(ctx, "publish feed event failed", "type", event.Type, "err", err)
	}
}
