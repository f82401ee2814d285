package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	CreateFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, followerID, followingID uint64) error
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	ListFollowingIDs(ctx context.Context, followerID uint64) ([]uint64, error)
	ListFollowerIDs(ctx context.Context, followingID uint64, limit, offset int) ([]uint64, error)
	CountFollowers(ctx context.Context, followingID uint64) (int64, error)
	CountFollowersBatch(ctx context.Context, followingIDs []uint64) (map[uint64]int64, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// CreateFollow 幂等写入关注关系
func (r *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follow).Error
}

func (r *FollowRepoImpl) DeleteFollow(ctx context.Context, followerID, followingID uint64) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{}).Error
}

func (r *FollowRepoImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var follow model.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FollowRepoImpl) ListFollowingIDs(ctx context.Context, followerID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	return ids, err
}

func (r *FollowRepoImpl) ListFollowerIDs(ctx context.Context, followingID uint64, limit, offset int) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("following_id = ?", followingID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *FollowRepoImpl) CountFollowers(ctx context.Context, followingID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("following_id = ?", followingID).
		Count(&count).Error
	return count, err
}

func (r *FollowRepoImpl) CountFollowersBatch(ctx context.Context, followingIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(followingIDs))
	if len(followingIDs) == 0 {
		return result, nil
	}

	type row struct {
		FollowingID uint64
		Cnt         int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Select("following_id, COUNT(*) AS cnt").
		Where("following_id IN ?", followingIDs).
		Group("following_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.FollowingID] = r.Cnt
	}
	return result, nil
}
