package api

import (
	"Quizfeed/internal/api/middleware"
	"Quizfeed/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		feedGroup := apiGroup.Group("/feed")
		{
			// 公共流匿名可看，带 Token 时返回精确的 likedByMe/followedByMe
			authOptGroup := feedGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/for-you", group.FeedHandler.ForYou)
			}

			authGroup := feedGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/following", group.FeedHandler.Following)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("/search", group.PostHandler.SearchPost)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.POST("/got-it", group.PostHandler.GotIt)
				authGroup.POST("/answer", group.PostHandler.AnswerQuestion)
			}
		}

		videoGroup := apiGroup.Group("/videos")
		{
			videoGroup.Use(middleware.AuthMiddleware())
			{
				videoGroup.POST("/:video_id/like", group.PostActionHandler.LikeVideo)
				videoGroup.DELETE("/:video_id/like", group.PostActionHandler.UnlikeVideo)
			}
		}

		userFollowGroup := apiGroup.Group("/user-relation")
		{
			userFollowGroup.Use(middleware.AuthMiddleware())
			{
				userFollowGroup.GET("/followings", group.UserFollowHandler.GetFollowings)
				userFollowGroup.POST("/follow/:following_id", group.UserFollowHandler.Follow)
				userFollowGroup.DELETE("/follow/:following_id", group.UserFollowHandler.Unfollow)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
