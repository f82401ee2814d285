package middleware

import (
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireToken 只校验令牌签名，不要求用户已落库
// 用户同步接口在用户记录存在之前调用，走这条链
func RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Fail(c, http.StatusUnauthorized, "缺少访问令牌")
			c.Abort()
			return
		}

		claims, err := security.ParseIdentityToken(token)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "令牌无效")
			c.Abort()
			return
		}

		c.Set(consts.CtxClerkIDKey, claims.ClerkID())
		c.Next()
	}
}

// RequireUser 校验令牌并要求用户已同步落库
func RequireUser(userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Fail(c, http.StatusUnauthorized, "缺少访问令牌")
			c.Abort()
			return
		}

		claims, err := security.ParseIdentityToken(token)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "令牌无效")
			c.Abort()
			return
		}

		user, err := userRepo.GetUserByClerkID(c.Request.Context(), claims.ClerkID())
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, "服务器内部错误")
			c.Abort()
			return
		}
		if user == nil {
			response.Fail(c, http.StatusUnauthorized, "用户未注册")
			c.Abort()
			return
		}

		c.Set(consts.CtxClerkIDKey, claims.ClerkID())
		c.Set(consts.CtxUserIDKey, user.ID)
		c.Next()
	}
}

// OptionalUser 匿名可访问，带合法令牌时注入用户身份
func OptionalUser(userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := security.ParseIdentityToken(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := userRepo.GetUserByClerkID(c.Request.Context(), claims.ClerkID())
		if err == nil && user != nil {
			c.Set(consts.CtxClerkIDKey, claims.ClerkID())
			c.Set(consts.CtxUserIDKey, user.ID)
		}
		c.Next()
	}
}

// CurrentUserID 从上下文取当前用户 ID
func CurrentUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(consts.CtxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok
}
