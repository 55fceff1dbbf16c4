package wire

import (
	"Quizfeed/internal/api"
	"Quizfeed/internal/api/config"
	"Quizfeed/internal/api/handler"
	"Quizfeed/internal/job"
	"Quizfeed/internal/pkg/cron"
	"Quizfeed/internal/pkg/es"
	"Quizfeed/internal/pkg/kafka"
	"Quizfeed/internal/repository"
	"Quizfeed/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	DB       *gorm.DB
	CronMgr  *cron.Manager
	Producer kafka.EventProducer
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepo(db)
	videoRepo := repository.NewVideoRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)

	postESRepo := es.NewPostRepo(es.Client)

	producer, err := kafka.NewEventProducer(cfg)
	if err != nil {
		return nil, err
	}

	userFollowService := service.NewUserFollowService(userFollowRepo)
	feedService := service.NewFeedService(videoRepo, likeRepo, userFollowRepo, userFollowService)
	postService := service.NewPostService(postRepo, videoRepo, postESRepo, producer)
	postActionService := service.NewPostActionService(likeRepo, videoRepo)

	handlers := &api.HandlersGroup{
		FeedHandler:       handler.NewFeedHandler(feedService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
		UserFollowHandler: handler.NewUserFollowHandler(userFollowService),
		MediaHandler:      handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	videoMetricJob := job.NewVideoMetricJob(videoRepo)
	cronMgr := cron.NewCronManager(videoMetricJob)

	return &ApplicationContainer{
		Router:   router,
		DB:       db,
		CronMgr:  cronMgr,
		Producer: producer,
	}, nil
}
