package dto

// FeedDTO 首页信息流
type FeedDTO struct {
	Posts   []*PostDTO `json:"posts"`
	HasMore bool       `json:"has_more"`
}

// FeedQueryDTO 信息流查询
type FeedQueryDTO struct {
	Limit int `form:"limit,default=10" validate:"min=1,max=50"`
}

// SuggestedUserDTO 推荐关注的用户
type SuggestedUserDTO struct {
	ID              uint64          `json:"id"`
	Name            string          `json:"name"`
	Username        *string         `json:"username"`
	ImageURL        string          `json:"image_url"`
	FollowerCount   int64           `json:"follower_count"`
	PostCount       int             `json:"post_count"`
	EngagementScore int64           `json:"engagement_score"`
	LastPostAt      *int64          `json:"last_post_at,omitempty"`
	RecentPosts     []*PostBriefDTO `json:"recent_posts"`
}

// PostBriefDTO 推荐卡片里的帖子摘要
type PostBriefDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	ViewCount int64  `json:"view_count"`
	LikeCount int64  `json:"like_count"`
}
