package wire

import (
	"Inkwell/internal/api"
	"Inkwell/internal/api/config"
	"Inkwell/internal/api/handler"
	"Inkwell/internal/job"
	croncore "Inkwell/internal/pkg/cron"
	"Inkwell/internal/pkg/es"
	"Inkwell/internal/pkg/kafka"
	mongorepo "Inkwell/internal/pkg/mongo"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *croncore.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	followRepo := repository.NewFollowRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	commentRepo := mongorepo.NewCommentRepo(mongoDB)
	postESRepo := es.NewPostRepo(es.Client)

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, userRepo, postESRepo)
	contentService := service.NewContentService()
	followService := service.NewFollowService(followRepo, userRepo)
	likeService := service.NewLikeService(likeRepo, postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	feedService := service.NewFeedService(postRepo, userRepo, followRepo)
	dashboardService := service.NewDashboardService(postRepo, followRepo, commentRepo)

	handlers := &api.HandlersGroup{
		UserHandler:      handler.NewUserHandler(userService),
		PostHandler:      handler.NewPostHandler(postService),
		ContentHandler:   handler.NewContentHandler(contentService),
		FollowHandler:    handler.NewFollowHandler(followService),
		LikeHandler:      handler.NewLikeHandler(likeService),
		CommentHandler:   handler.NewCommentHandler(commentService),
		FeedHandler:      handler.NewFeedHandler(feedService),
		DashboardHandler: handler.NewDashboardHandler(dashboardService),
		UserRepo:         userRepo,
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, postRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := croncore.NewCronManager(job.NewViewSyncJob(postRepo))

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
