package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, service.ErrInvalidInput)
		return 0, false
	}
	return id, true
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req dto.UpsertPostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PatchPostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), userID, postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetPost 帖子详情，匿名可读已发布帖子
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var viewerID *uint64
	if id, exists := middleware.CurrentUserID(c); exists {
		viewerID = &id
	}

	post, err := h.postService.GetPost(c.Request.Context(), viewerID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// GetMyDraft 当前用户的草稿，没有草稿时 data 为 null
func (h *PostHandler) GetMyDraft(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	post, err := h.postService.GetMyDraft(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) ListMyPosts(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req dto.ListPostsDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := h.postService.ListMyPosts(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (h *PostHandler) SearchPosts(c *gin.Context) {
	var req dto.SearchPostsDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := h.postService.SearchPosts(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}
