package repository

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AuthorStats 创作者帖子聚合
type AuthorStats struct {
	TotalPosts     int64
	PublishedPosts int64
	TotalViews     int64
	TotalLikes     int64
}

// RecentTotals 近期发布帖子的浏览与点赞合计
type RecentTotals struct {
	Views int64
	Likes int64
}

type PostRepo interface {
	GetPostByID(ctx context.Context, id uint64) (*model.Post, error)
	GetPostWithAuthor(ctx context.Context, id uint64) (*model.Post, error)
	GetDraftByAuthor(ctx context.Context, authorID uint64) (*model.Post, error)
	CreatePost(ctx context.Context, post *model.Post) (*model.Post, error)
	SavePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
	ListByAuthor(ctx context.Context, authorID uint64, status *string) ([]*model.Post, error)
	ListPublishedByAuthors(ctx context.Context, authorIDs []uint64, limit int) ([]*model.Post, error)
	ListRecentPublished(ctx context.Context, limit int) ([]*model.Post, error)
	LatestPublishedByAuthor(ctx context.Context, authorID uint64, n int) ([]*model.Post, error)
	IncrementViewCount(ctx context.Context, id uint64, delta int64) error
	IncrementLikeCount(ctx context.Context, id uint64, delta int64) error
	ListTrending(ctx context.Context, since time.Time, limit int) ([]*model.Post, error)
	GetAuthorStats(ctx context.Context, authorID uint64) (*AuthorStats, error)
	GetRecentAuthorTotals(ctx context.Context, authorID uint64, since time.Time) (*RecentTotals, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (r *PostRepoImpl) GetPostByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepoImpl) GetPostWithAuthor(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepoImpl) GetDraftByAuthor(ctx context.Context, authorID uint64) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND status = ?", authorID, consts.PostStatusDraft).
		Order("updated_at DESC").
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// CreatePost 创建帖子
// 该作者已有草稿时就地覆盖原草稿，保存草稿和由草稿直接发布都复用同一条记录
func (r *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Post
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("author_id = ? AND status = ?", post.AuthorID, consts.PostStatusDraft).
			Order("updated_at DESC").
			First(&existing).Error
		if err == nil {
			existing.Title = post.Title
			existing.Content = post.Content
			existing.Tags = post.Tags
			existing.Category = post.Category
			existing.FeaturedImage = post.FeaturedImage
			existing.ScheduledFor = post.ScheduledFor
			existing.Status = post.Status
			if post.Status == consts.PostStatusPublished && existing.PublishedAt == nil {
				existing.PublishedAt = post.PublishedAt
			}
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*post = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepoImpl) SavePost(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

func (r *PostRepoImpl) ListByAuthor(ctx context.Context, authorID uint64, status *string) ([]*model.Post, error) {
	var posts []*model.Post
	query := r.db.WithContext(ctx).Where("author_id = ?", authorID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepoImpl) ListPublishedByAuthors(ctx context.Context, authorIDs []uint64, limit int) ([]*model.Post, error) {
	if len(authorIDs) == 0 {
		return []*model.Post{}, nil
	}
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id IN ? AND status = ?", authorIDs, consts.PostStatusPublished).
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepoImpl) ListRecentPublished(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("status = ?", consts.PostStatusPublished).
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepoImpl) LatestPublishedByAuthor(ctx context.Context, authorID uint64, n int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND status = ?", authorID, consts.PostStatusPublished).
		Order("published_at DESC").
		Limit(n).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepoImpl) IncrementViewCount(ctx context.Context, id uint64, delta int64) error {
	return r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}

func (r *PostRepoImpl) IncrementLikeCount(ctx context.Context, id uint64, delta int64) error {
	return r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error
}

func (r *PostRepoImpl) GetAuthorStats(ctx context.Context, authorID uint64) (*AuthorStats, error) {
	stats := &AuthorStats{}

	err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("author_id = ?", authorID).
		Count(&stats.TotalPosts).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&model.Post{}).
		Where("author_id = ? AND status = ?", authorID, consts.PostStatusPublished).
		Count(&stats.PublishedPosts).Error
	if err != nil {
		return nil, err
	}

	type sums struct {
		Views int64
		Likes int64
	}
	var s sums
	err = r.db.WithContext(ctx).Model(&model.Post{}).
		Select("COALESCE(SUM(view_count), 0) AS views, COALESCE(SUM(like_count), 0) AS likes").
		Where("author_id = ?", authorID).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	stats.TotalViews = s.Views
	stats.TotalLikes = s.Likes
	return stats, nil
}

// ListTrending 近期热门，按浏览加权点赞排序
func (r *PostRepoImpl) ListTrending(ctx context.Context, since time.Time, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("status = ? AND published_at >= ?", consts.PostStatusPublished, since).
		Order("view_count + like_count * 5 DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// GetRecentAuthorTotals 统计指定时间后发布的帖子浏览与点赞合计
func (r *PostRepoImpl) GetRecentAuthorTotals(ctx context.Context, authorID uint64, since time.Time) (*RecentTotals, error) {
	var totals RecentTotals
	err := r.db.WithContext(ctx).Model(&model.Post{}).
		Select("COALESCE(SUM(view_count), 0) AS views, COALESCE(SUM(like_count), 0) AS likes").
		Where("author_id = ? AND status = ? AND published_at >= ?", authorID, consts.PostStatusPublished, since).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
