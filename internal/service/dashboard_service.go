package service

import (
	"Inkwell/internal/api/dto"
	mongorepo "Inkwell/internal/pkg/mongo"
	"Inkwell/internal/repository"
	"context"
	"time"
)

// 增长指标的统计窗口
const growthWindow = 30 * 24 * time.Hour

// 评论与粉丝暂无历史快照，增长值沿用固定估算
const (
	placeholderCommentsGrowth  = 15.0
	placeholderFollowersGrowth = 12.0
)

type DashboardService interface {
	GetAnalytics(ctx context.Context, userID uint64) (*dto.AnalyticsDTO, error)
}

type DashboardServiceImpl struct {
	postRepo    repository.PostRepo
	followRepo  repository.FollowRepo
	commentRepo mongorepo.CommentRepo
}

func NewDashboardService(postRepo repository.PostRepo, followRepo repository.FollowRepo, commentRepo mongorepo.CommentRepo) DashboardService {
	return &DashboardServiceImpl{
		postRepo:    postRepo,
		followRepo:  followRepo,
		commentRepo: commentRepo,
	}
}

// GetAnalytics 创作者仪表盘
// 浏览/点赞增长为近 30 天发布帖子在总量中的占比
func (s *DashboardServiceImpl) GetAnalytics(ctx context.Context, userID uint64) (*dto.AnalyticsDTO, error) {
	stats, err := s.postRepo.GetAuthorStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.postRepo.GetRecentAuthorTotals(ctx, userID, time.Now().Add(-growthWindow))
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	postIDs := make([]uint64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	totalComments, err := s.commentRepo.CountCommentsByPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	totalFollowers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &dto.AnalyticsDTO{
		TotalViews:     stats.TotalViews,
		TotalLikes:     stats.TotalLikes,
		TotalComments:  totalComments,
		TotalFollowers: totalFollowers,
	}
	if stats.TotalViews > 0 {
		result.ViewsGrowth = float64(recent.Views) / float64(stats.TotalViews) * 100
	}
	if stats.TotalLikes > 0 {
		result.LikesGrowth = float64(recent.Likes) / float64(stats.TotalLikes) * 100
	}
	if totalComments > 0 {
		result.CommentsGrowth = placeholderCommentsGrowth
	}
	if totalFollowers > 0 {
		result.FollowersGrowth = placeholderFollowersGrowth
	}
	return result, nil
}
