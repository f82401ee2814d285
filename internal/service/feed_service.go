package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// 近期活跃窗口，窗口内发过帖的作者优先推荐
	recentActivityWindow = 7 * 24 * time.Hour

	trendingWindow = 7 * 24 * time.Hour

	suggestCandidateFactor = 3
	suggestFetchLimit      = 8

	scorePerView     = 1
	scorePerLike     = 5
	scorePerFollower = 10
)

type FeedService interface {
	GetFeed(ctx context.Context, viewerID *uint64, req *dto.FeedQueryDTO) (*dto.FeedDTO, error)
	GetTrending(ctx context.Context, req *dto.FeedQueryDTO) ([]*dto.PostDTO, error)
	GetSuggestedUsers(ctx context.Context, userID uint64, limit int) ([]*dto.SuggestedUserDTO, error)
}

type FeedServiceImpl struct {
	postRepo   repository.PostRepo
	userRepo   repository.UserRepo
	followRepo repository.FollowRepo
}

func NewFeedService(postRepo repository.PostRepo, userRepo repository.UserRepo, followRepo repository.FollowRepo) FeedService {
	return &FeedServiceImpl{
		postRepo:   postRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// GetFeed 首页信息流
// 登录用户优先看到所关注作者的帖子，关注列表为空或没有内容时退回全站最新
func (s *FeedServiceImpl) GetFeed(ctx context.Context, viewerID *uint64, req *dto.FeedQueryDTO) (*dto.FeedDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	if viewerID != nil {
		followingIDs, err := s.followRepo.ListFollowingIDs(ctx, *viewerID)
		if err != nil {
			return nil, err
		}
		if len(followingIDs) > 0 {
			posts, err := s.postRepo.ListPublishedByAuthors(ctx, followingIDs, req.Limit+1)
			if err != nil {
				return nil, err
			}
			if len(posts) > 0 {
				return buildFeed(posts, req.Limit), nil
			}
		}
	}

	posts, err := s.postRepo.ListRecentPublished(ctx, req.Limit+1)
	if err != nil {
		return nil, err
	}
	return buildFeed(posts, req.Limit), nil
}

func buildFeed(posts []*model.Post, limit int) *dto.FeedDTO {
	hasMore := len(posts) > limit
	if hasMore {
		posts = posts[:limit]
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		result = append(result, toFeedPostDTO(post))
	}
	return &dto.FeedDTO{Posts: result, HasMore: hasMore}
}

// GetTrending 近 7 天热门帖子
func (s *FeedServiceImpl) GetTrending(ctx context.Context, req *dto.FeedQueryDTO) ([]*dto.PostDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	since := time.Now().Add(-trendingWindow)
	posts, err := s.postRepo.ListTrending(ctx, since, req.Limit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		result = append(result, toFeedPostDTO(post))
	}
	return result, nil
}

type suggestedCandidate struct {
	user   *model.User
	posts  []*model.Post
	score  int64
	recent bool
	lastAt *time.Time
}

// GetSuggestedUsers 推荐关注，按最近 5 篇发布帖的互动得分排序
// 得分 = 浏览 + 5*点赞 + 10*粉丝，7 天内发过帖的作者排在前面
func (s *FeedServiceImpl) GetSuggestedUsers(ctx context.Context, userID uint64, limit int) ([]*dto.SuggestedUserDTO, error) {
	followingIDs, err := s.followRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	excludeIDs := append([]uint64{userID}, followingIDs...)
	users, err := s.userRepo.ListCandidates(ctx, excludeIDs, limit*suggestCandidateFactor)
	if err != nil {
		return nil, err
	}

	candidates := make([]*suggestedCandidate, len(users))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(suggestFetchLimit)
	for i, user := range users {
		if user.Username == nil {
			continue
		}
		i, user := i, user
		g.Go(func() error {
			posts, err := s.postRepo.LatestPublishedByAuthor(gCtx, user.ID, 5)
			if err != nil {
				return err
			}
			if len(posts) == 0 {
				return nil
			}
			candidates[i] = &suggestedCandidate{user: user, posts: posts}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]*suggestedCandidate, 0, len(candidates))
	keptIDs := make([]uint64, 0, len(candidates))
	for _, c := range candidates {
		if c == nil {
			continue
		}
		kept = append(kept, c)
		keptIDs = append(keptIDs, c.user.ID)
	}

	followerCounts, err := s.followRepo.CountFollowersBatch(ctx, keptIDs)
	if err != nil {
		return nil, err
	}

	recentCutoff := time.Now().Add(-recentActivityWindow)
	for _, c := range kept {
		var views, likes int64
		for _, post := range c.posts {
			views += post.ViewCount
			likes += post.LikeCount
		}
		followers := followerCounts[c.user.ID]
		c.score = views*scorePerView + likes*scorePerLike + followers*scorePerFollower
		c.lastAt = c.posts[0].PublishedAt
		c.recent = c.lastAt != nil && c.lastAt.After(recentCutoff)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].recent != kept[j].recent {
			return kept[i].recent
		}
		return kept[i].score > kept[j].score
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}

	result := make([]*dto.SuggestedUserDTO, 0, len(kept))
	for _, c := range kept {
		item := &dto.SuggestedUserDTO{
			ID:              c.user.ID,
			Name:            c.user.Name,
			Username:        c.user.Username,
			ImageURL:        c.user.ImageURL,
			FollowerCount:   followerCounts[c.user.ID],
			PostCount:       len(c.posts),
			EngagementScore: c.score,
			LastPostAt:      util.ToMillisPtr(c.lastAt),
		}
		for _, post := range c.posts {
			item.RecentPosts = append(item.RecentPosts, &dto.PostBriefDTO{
				ID:        post.ID,
				Title:     post.Title,
				ViewCount: post.ViewCount,
				LikeCount: post.LikeCount,
			})
		}
		result = append(result, item)
	}
	return result, nil
}

func toFeedPostDTO(post *model.Post) *dto.PostDTO {
	result := &dto.PostDTO{
		ID:            post.ID,
		Title:         post.Title,
		Content:       post.Content,
		Status:        post.Status,
		Tags:          post.Tags,
		Category:      post.Category,
		FeaturedImage: post.FeaturedImage,
		ViewCount:     post.ViewCount,
		LikeCount:     post.LikeCount,
		CreatedAt:     post.CreatedAt.UnixMilli(),
		UpdatedAt:     post.UpdatedAt.UnixMilli(),
		PublishedAt:   util.ToMillisPtr(post.PublishedAt),
	}
	if post.Author.ID != 0 {
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
