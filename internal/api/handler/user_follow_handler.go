package handler

import (
	"Quizfeed/internal/pkg/response"
	"Quizfeed/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	userID := c.GetString("user_id")
	followingID := c.Param("following_id")
	if followingID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.userFollowSvc.Follow(c.Request.Context(), userID, followingID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetString("user_id")
	followingID := c.Param("following_id")
	if followingID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.userFollowSvc.Unfollow(c.Request.Context(), userID, followingID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) GetFollowings(c *gin.Context) {
	userID := c.GetString("user_id")

	ids, err := s.userFollowSvc.GetFollowingIDs(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ids)
}
