package handler

import (
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleLike 点赞/取消点赞
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	state, err := h.likeService.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (h *LikeHandler) GetLikeState(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	state, err := h.likeService.GetLikeState(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}
