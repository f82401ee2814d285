package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedService service.FeedService
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// GetFeed 匿名可访问，登录用户优先展示关注作者的内容
func (h *FeedHandler) GetFeed(c *gin.Context) {
	var req dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	var viewerID *uint64
	if id, exists := middleware.CurrentUserID(c); exists {
		viewerID = &id
	}

	feed, err := h.feedService.GetFeed(c.Request.Context(), viewerID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

func (h *FeedHandler) GetTrending(c *gin.Context) {
	var req dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := h.feedService.GetTrending(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (h *FeedHandler) GetSuggestedUsers(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	users, err := h.feedService.GetSuggestedUsers(c.Request.Context(), userID, req.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}
