package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// StoreUser 身份服务回传用户信息，幂等落库
func (h *UserHandler) StoreUser(c *gin.Context) {
	clerkID := c.GetString(consts.CtxClerkIDKey)

	var req dto.StoreUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.StoreUser(c.Request.Context(), clerkID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	user, err := h.userService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (h *UserHandler) ChangeUsername(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req dto.ChangeUsernameDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.ChangeUsername(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// GetPublicUser 公开主页，按用户名查询
func (h *UserHandler) GetPublicUser(c *gin.Context) {
	username := c.Param("username")

	user, err := h.userService.GetPublicUser(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
