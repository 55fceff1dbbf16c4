package handler

import (
	"Quizfeed/internal/pkg/response"
	"Quizfeed/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

func (s *PostActionHandler) LikeVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("video_id")
	if videoID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.actionSvc.LikeVideo(c.Request.Context(), userID, videoID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostActionHandler) UnlikeVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("video_id")
	if videoID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.actionSvc.UnlikeVideo(c.Request.Context(), userID, videoID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
