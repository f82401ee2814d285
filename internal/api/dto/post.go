package dto

// UpsertPostDTO 帖子 - 保存草稿或发布
// 目标状态为 draft 且已有草稿时就地覆盖，不产生新记录
type UpsertPostDTO struct {
	Title         string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Content       string   `json:"content"`
	Status        string   `json:"status" binding:"required" validate:"oneof=draft published"`
	Tags          []string `json:"tags" validate:"max=20"`
	Category      *string  `json:"category,omitempty" validate:"omitempty,max=64"`
	FeaturedImage *string  `json:"featured_image,omitempty" validate:"omitempty,max=512"`
	ScheduledFor  *int64   `json:"scheduled_for,omitempty"` // 毫秒时间戳
}

// PatchPostDTO 帖子 - 部分更新，nil 字段不修改
type PatchPostDTO struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Content       *string   `json:"content,omitempty"`
	Status        *string   `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
	Tags          *[]string `json:"tags,omitempty" validate:"omitempty,max=20"`
	Category      *string   `json:"category,omitempty" validate:"omitempty,max=64"`
	FeaturedImage *string   `json:"featured_image,omitempty" validate:"omitempty,max=512"`
	ScheduledFor  *int64    `json:"scheduled_for,omitempty"`
}

// PostDTO 帖子
type PostDTO struct {
	ID            uint64     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Status        string     `json:"status"`
	Tags          []string   `json:"tags"`
	Category      *string    `json:"category,omitempty"`
	FeaturedImage *string    `json:"featured_image,omitempty"`
	ScheduledFor  *int64     `json:"scheduled_for,omitempty"`
	ViewCount     int64      `json:"view_count"`
	LikeCount     int64      `json:"like_count"`
	CreatedAt     int64      `json:"created_at"`
	UpdatedAt     int64      `json:"updated_at"`
	PublishedAt   *int64     `json:"published_at,omitempty"`
	Username      *string    `json:"username,omitempty"`
	Author        *AuthorDTO `json:"author,omitempty"`
}

// ListPostsDTO 我的帖子列表查询
type ListPostsDTO struct {
	Status *string `form:"status" validate:"omitempty,oneof=draft published"`
}

// SearchPostsDTO 帖子搜索查询
type SearchPostsDTO struct {
	Keyword  string `form:"keyword" binding:"required" validate:"required"`
	Page     int    `form:"page,default=1" validate:"min=1"`
	PageSize int    `form:"page_size,default=10" validate:"min=1,max=50"`
}
