package model

import "time"

// Follow 关注关系，follower 关注 following
type Follow struct {
	FollowerID  uint64    `gorm:"primaryKey" json:"follower_id"`
	FollowingID uint64    `gorm:"primaryKey;index:idx_following_id" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
