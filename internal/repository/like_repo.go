package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepo interface {
	CreateLike(ctx context.Context, like *model.Like) (bool, error)
	DeleteLike(ctx context.Context, userID, postID uint64) (bool, error)
	IsLiked(ctx context.Context, userID, postID uint64) (bool, error)
	CountLikesByAuthorPosts(ctx context.Context, authorID uint64) (int64, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

// CreateLike 幂等写入点赞，返回是否真正新增
func (r *LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteLike 删除点赞，返回是否真正删除
func (r *LikeRepoImpl) DeleteLike(ctx context.Context, userID, postID uint64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepoImpl) IsLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	var like model.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *LikeRepoImpl) CountLikesByAuthorPosts(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN posts ON posts.id = likes.post_id").
		Where("posts.author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
