package dto

// AnalyticsDTO 创作者仪表盘统计
type AnalyticsDTO struct {
	TotalViews      int64   `json:"total_views"`
	TotalLikes      int64   `json:"total_likes"`
	TotalComments   int64   `json:"total_comments"`
	TotalFollowers  int64   `json:"total_followers"`
	ViewsGrowth     float64 `json:"views_growth"`
	LikesGrowth     float64 `json:"likes_growth"`
	CommentsGrowth  float64 `json:"comments_growth"`
	FollowersGrowth float64 `json:"followers_growth"`
}
