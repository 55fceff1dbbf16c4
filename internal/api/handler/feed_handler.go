package handler

import (
	"Quizfeed/internal/api/dto"
	"Quizfeed/internal/pkg/response"
	"Quizfeed/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc}
}

func (s *FeedHandler) ForYou(c *gin.Context) {
	userID := c.GetString("user_id")

	var query dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	cursor := 0
	if query.Cursor != nil {
		cursor = *query.Cursor
	}

	page, err := s.feedSvc.ForYou(c.Request.Context(), userID, cursor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *FeedHandler) Following(c *gin.Context) {
	userID := c.GetString("user_id")

	var query dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	cursor := 0
	if query.Cursor != nil {
		cursor = *query.Cursor
	}

	page, err := s.feedSvc.Following(c.Request.Context(), userID, cursor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
