package model

import (
	"time"
)

type Post struct {
	ID            uint64     `gorm:"primaryKey"`
	AuthorID      uint64     `gorm:"not null;index:idx_author_status" json:"author_id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Content       string     `gorm:"type:mediumtext;not null" json:"content"`
	Status        string     `gorm:"type:varchar(16);not null;index:idx_author_status" json:"status"` // draft / published
	Tags          []string   `gorm:"type:json;serializer:json" json:"tags"`
	Category      *string    `gorm:"type:varchar(64)" json:"category"`
	FeaturedImage *string    `gorm:"type:varchar(512)" json:"featured_image"`
	ScheduledFor  *time.Time `json:"scheduled_for"`
	ViewCount     int64      `gorm:"not null;default:0" json:"view_count"`
	LikeCount     int64      `gorm:"not null;default:0" json:"like_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	PublishedAt   *time.Time `json:"published_at"` // 首次发布后不再变化

	// 关联关系
	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
