package model

import (
	"time"
)

type User struct {
	ID           uint64  `gorm:"primaryKey"`
	ClerkID      string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_clerk_id" json:"clerkId"`
	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	Email        string  `gorm:"type:varchar(255);not null" json:"email"`
	Username     *string `gorm:"type:varchar(20);uniqueIndex:idx_username" json:"username"`
	ImageURL     string  `gorm:"type:varchar(512)" json:"imageUrl"`
	CreatedAt    time.Time
	LastActiveAt time.Time
}

func (User) TableName() string {
	return "users"
}
