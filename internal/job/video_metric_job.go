package job

import (
	"Quizfeed/internal/pkg/logger"
	"Quizfeed/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// VideoMetricJob 回填 videos.likes_count 反范式计数
type VideoMetricJob struct {
	videoRepo repository.VideoRepo
}

func NewVideoMetricJob(videoRepo repository.VideoRepo) *VideoMetricJob {
	return &VideoMetricJob{videoRepo: videoRepo}
}

func (s *VideoMetricJob) Run() {
	traceID := "job-video-metric-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.videoRepo.SyncLikesCount(ctx); err != nil {
		log.ErrorContext(ctx, "sync video likes count error", "err", err)
		return
	}
	log.InfoContext(ctx, "video likes count synced")
}
