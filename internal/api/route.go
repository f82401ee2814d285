package api

import (
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.Trace())
	r.Use(middleware.Cors())
	logger.SetupGin(r)

	requireToken := middleware.RequireToken()
	requireUser := middleware.RequireUser(group.UserRepo)
	optionalUser := middleware.OptionalUser(group.UserRepo)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.GET("/by-name/:username", group.UserHandler.GetPublicUser)
			userGroup.GET("/:id/followers", group.FollowHandler.ListFollowers)
			userGroup.GET("/:id/followers/count", group.FollowHandler.GetFollowerCount)

			userGroup.POST("/sync", requireToken, group.UserHandler.StoreUser)

			authGroup := userGroup.Group("")
			authGroup.Use(requireUser)
			{
				authGroup.GET("/info", group.UserHandler.GetMe)
				authGroup.PUT("/username", group.UserHandler.ChangeUsername)
				authGroup.POST("/:id/follow", group.FollowHandler.Follow)
				authGroup.DELETE("/:id/follow", group.FollowHandler.Unfollow)
				authGroup.GET("/:id/follow", group.FollowHandler.GetFollowState)
			}
		}

		postGroup := apiGroup.Group("/post")
		{
			postGroup.GET("/search", group.PostHandler.SearchPosts)
			postGroup.GET("/:id", optionalUser, group.PostHandler.GetPost)
			postGroup.GET("/:id/comments", group.CommentHandler.ListComments)

			authGroup := postGroup.Group("")
			authGroup.Use(requireUser)
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.GET("/mine", group.PostHandler.ListMyPosts)
				authGroup.GET("/draft", group.PostHandler.GetMyDraft)
				authGroup.PATCH("/:id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:id", group.PostHandler.DeletePost)

				authGroup.POST("/:id/like", group.LikeHandler.ToggleLike)
				authGroup.GET("/:id/like", group.LikeHandler.GetLikeState)
				authGroup.POST("/:id/comments", group.CommentHandler.AddComment)
			}
		}

		commentGroup := apiGroup.Group("/comment")
		commentGroup.Use(requireUser)
		{
			commentGroup.DELETE("/:id", group.CommentHandler.DeleteComment)
		}

		contentGroup := apiGroup.Group("/content")
		contentGroup.Use(requireUser)
		{
			contentGroup.POST("/generate", group.ContentHandler.Generate)
			contentGroup.POST("/improve", group.ContentHandler.Improve)
		}

		feedGroup := apiGroup.Group("/feed")
		{
			feedGroup.GET("", optionalUser, group.FeedHandler.GetFeed)
			feedGroup.GET("/trending", group.FeedHandler.GetTrending)
			feedGroup.GET("/suggested", requireUser, group.FeedHandler.GetSuggestedUsers)
		}

		dashboardGroup := apiGroup.Group("/dashboard")
		dashboardGroup.Use(requireUser)
		{
			dashboardGroup.GET("/analytics", group.DashboardHandler.GetAnalytics)
		}
	}

	return r
}
