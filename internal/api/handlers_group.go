package api

import (
	"Inkwell/internal/api/handler"
	"Inkwell/internal/repository"
)

// HandlersGroup 汇总所有 HTTP Handler，由 wire 装配
type HandlersGroup struct {
	UserHandler      *handler.UserHandler
	PostHandler      *handler.PostHandler
	ContentHandler   *handler.ContentHandler
	FollowHandler    *handler.FollowHandler
	LikeHandler      *handler.LikeHandler
	CommentHandler   *handler.CommentHandler
	FeedHandler      *handler.FeedHandler
	DashboardHandler *handler.DashboardHandler

	// 认证中间件需要按外部标识回查用户
	UserRepo repository.UserRepo
}
