package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.followService.Follow(c.Request.Context(), userID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.FollowStateDTO{Following: true})
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.followService.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.FollowStateDTO{Following: false})
}

func (h *FollowHandler) GetFollowState(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	state, err := h.followService.GetFollowState(c.Request.Context(), userID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (h *FollowHandler) GetFollowerCount(c *gin.Context) {
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	count, err := h.followService.GetFollowerCount(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}

func (h *FollowHandler) ListFollowers(c *gin.Context) {
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.FollowListDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	users, err := h.followService.ListFollowers(c.Request.Context(), targetID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}
