package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/es"
	redisutil "Inkwell/internal/pkg/redis"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.UpsertPostDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint64, req *dto.PatchPostDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID, postID uint64) error
	GetPost(ctx context.Context, viewerID *uint64, postID uint64) (*dto.PostDTO, error)
	GetMyDraft(ctx context.Context, userID uint64) (*dto.PostDTO, error)
	ListMyPosts(ctx context.Context, userID uint64, req *dto.ListPostsDTO) ([]*dto.PostDTO, error)
	SearchPosts(ctx context.Context, req *dto.SearchPostsDTO) ([]*dto.PostDTO, error)
}

type PostServiceImpl struct {
	postRepo   repository.PostRepo
	userRepo   repository.UserRepo
	postEsRepo es.PostRepo
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo, postEsRepo es.PostRepo) PostService {
	return &PostServiceImpl{
		postRepo:   postRepo,
		userRepo:   userRepo,
		postEsRepo: postEsRepo,
	}
}

// CreatePost 保存草稿或直接发布
// 同一作者最多保留一份草稿，目标状态为 draft 时就地覆盖已有草稿
func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.UpsertPostDTO) (*dto.PostDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.Username == nil {
		return nil, ErrUsernameRequired
	}

	post := &model.Post{
		AuthorID:      userID,
		Title:         req.Title,
		Content:       req.Content,
		Status:        req.Status,
		Tags:          req.Tags,
		Category:      req.Category,
		FeaturedImage: req.FeaturedImage,
		ScheduledFor:  util.FromMillisPtr(req.ScheduledFor),
	}
	if post.Status == consts.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	post, err = s.postRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	if post.Status == consts.PostStatusPublished {
		s.indexPost(ctx, post)
	}

	post.Author = *user
	return s.toPostDTO(post, true), nil
}

// UpdatePost 部分更新，nil 字段保持原值
// 草稿转为发布时保留原帖子 ID，published_at 只在首次发布时写入
func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, req *dto.PatchPostDTO) (*dto.PostDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	post, err := s.postRepo.GetPostWithAuthor(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.AuthorID != userID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.Category != nil {
		post.Category = req.Category
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = req.FeaturedImage
	}
	if req.ScheduledFor != nil {
		post.ScheduledFor = util.FromMillisPtr(req.ScheduledFor)
	}

	if req.Status != nil {
		// 发布不可逆，已发布的帖子不能退回草稿
		if post.Status == consts.PostStatusPublished && *req.Status == consts.PostStatusDraft {
			return nil, ErrInvalidInput
		}
		post.Status = *req.Status
		if post.Status == consts.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
	}

	if err := s.postRepo.SavePost(ctx, post); err != nil {
		return nil, err
	}

	if post.Status == consts.PostStatusPublished {
		s.indexPost(ctx, post)
	}

	return s.toPostDTO(post, true), nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.AuthorID != userID {
		return ErrForbidden
	}

	if err := s.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}

	if post.Status == consts.PostStatusPublished {
		s.removeFromIndex(ctx, postID)
	}
	return nil
}

// GetPost 读取帖子，草稿只对作者可见
// 非作者浏览已发布帖子时浏览量先写入 Redis 缓冲，由定时任务回刷
func (s *PostServiceImpl) GetPost(ctx context.Context, viewerID *uint64, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostWithAuthor(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	isAuthor := viewerID != nil && *viewerID == post.AuthorID
	if post.Status != consts.PostStatusPublished && !isAuthor {
		return nil, ErrNotFound
	}

	if post.Status == consts.PostStatusPublished && !isAuthor {
		field := strconv.FormatUint(post.ID, 10)
		if err := redisutil.HIncrBy(ctx, consts.PostViewBufferKey, field, 1); err != nil {
			log.WarnContext(ctx, "buffer view count failed", "post_id", post.ID, "err", err)
		}
	}

	return s.toPostDTO(post, true), nil
}

// GetMyDraft 当前用户的草稿，没有草稿时返回 nil
func (s *PostServiceImpl) GetMyDraft(ctx context.Context, userID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetDraftByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return s.toPostDTO(post, false), nil
}

func (s *PostServiceImpl) ListMyPosts(ctx context.Context, userID uint64, req *dto.ListPostsDTO) ([]*dto.PostDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	posts, err := s.postRepo.ListByAuthor(ctx, userID, req.Status)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		result = append(result, s.toPostDTO(post, false))
	}
	return result, nil
}

// SearchPosts 全文检索，命中后回源数据库补齐最新数据
func (s *PostServiceImpl) SearchPosts(ctx context.Context, req *dto.SearchPostsDTO) ([]*dto.PostDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	from := (req.Page - 1) * req.PageSize
	docs, err := s.postEsRepo.SearchPosts(ctx, req.Keyword, from, req.PageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostDTO, 0, len(docs))
	for _, doc := range docs {
		post, err := s.postRepo.GetPostWithAuthor(ctx, doc.ID)
		if err != nil {
			return nil, err
		}
		if post == nil || post.Status != consts.PostStatusPublished {
			continue
		}
		result = append(result, s.toPostDTO(post, true))
	}
	return result, nil
}

func (s *PostServiceImpl) indexPost(ctx context.Context, post *model.Post) {
	doc := &es.PostES{
		ID:       post.ID,
		AuthorID: post.AuthorID,
		Title:    post.Title,
		Content:  post.Content,
		Tags:     post.Tags,
	}
	if post.Category != nil {
		doc.Category = *post.Category
	}
	if post.PublishedAt != nil {
		doc.PublishedAt = post.PublishedAt.UnixMilli()
	}
	if err := s.postEsRepo.IndexPost(ctx, doc); err != nil {
		log.WarnContext(ctx, "index post failed", "post_id", post.ID, "err", err)
	}
}

func (s *PostServiceImpl) removeFromIndex(ctx context.Context, postID uint64) {
	if err := s.postEsRepo.DeletePost(ctx, postID); err != nil {
		log.WarnContext(ctx, "remove post from index failed", "post_id", postID, "err", err)
	}
}

func (s *PostServiceImpl) toPostDTO(post *model.Post, withAuthor bool) *dto.PostDTO {
	result := &dto.PostDTO{}
	_ = copier.Copy(result, post)
	result.CreatedAt = post.CreatedAt.UnixMilli()
	result.UpdatedAt = post.UpdatedAt.UnixMilli()
	result.PublishedAt = util.ToMillisPtr(post.PublishedAt)
	result.ScheduledFor = util.ToMillisPtr(post.ScheduledFor)
	result.Author = nil
	if withAuthor && post.Author.ID != 0 {
		result.Username = post.Author.Username
		result.Author = &dto.AuthorDTO{
			ID:       post.Author.ID,
			Name:     post.Author.Name,
			Username: post.Author.Username,
			ImageURL: post.Author.ImageURL,
		}
	}
	return result
}
