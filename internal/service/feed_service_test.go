package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedQuery(limit int) *dto.FeedQueryDTO {
	return &dto.FeedQueryDTO{Limit: limit}
}

type mockFollowRepo struct {
	follows map[uint64]map[uint64]bool // follower -> following set
}

func newMockFollowRepo() *mockFollowRepo {
	return &mockFollowRepo{follows: make(map[uint64]map[uint64]bool)}
}

func (m *mockFollowRepo) CreateFollow(_ context.Context, follow *model.Follow) error {
	if m.follows[follow.FollowerID] == nil {
		m.follows[follow.FollowerID] = make(map[uint64]bool)
	}
	m.follows[follow.FollowerID][follow.FollowingID] = true
	return nil
}

func (m *mockFollowRepo) DeleteFollow(_ context.Context, followerID, followingID uint64) error {
	delete(m.follows[followerID], followingID)
	return nil
}

func (m *mockFollowRepo) IsFollowing(_ context.Context, followerID, followingID uint64) (bool, error) {
	return m.follows[followerID][followingID], nil
}

func (m *mockFollowRepo) ListFollowingIDs(_ context.Context, followerID uint64) ([]uint64, error) {
	var ids []uint64
	for id := range m.follows[followerID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *mockFollowRepo) ListFollowerIDs(_ context.Context, followingID uint64, limit, offset int) ([]uint64, error) {
	var ids []uint64
	for follower, set := range m.follows {
		if set[followingID] {
			ids = append(ids, follower)
		}
	}
	if offset >= len(ids) {
		return []uint64{}, nil
	}
	ids = ids[offset:]
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (m *mockFollowRepo) CountFollowers(_ context.Context, followingID uint64) (int64, error) {
	var count int64
	for _, set := range m.follows {
		if set[followingID] {
			count++
		}
	}
	return count, nil
}

func (m *mockFollowRepo) CountFollowersBatch(_ context.Context, followingIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(followingIDs))
	for _, id := range followingIDs {
		count, _ := m.CountFollowers(context.Background(), id)
		result[id] = count
	}
	return result, nil
}

func seedPublishedPost(repo *mockPostRepo, authorID uint64, title string, views, likes int64, publishedAt time.Time) *model.Post {
	post := &model.Post{
		AuthorID:    authorID,
		Title:       title,
		Status:      consts.PostStatusPublished,
		ViewCount:   views,
		LikeCount:   likes,
		PublishedAt: &publishedAt,
	}
	created, _ := repo.CreatePost(context.Background(), post)
	repo.posts[created.ID].ViewCount = views
	repo.posts[created.ID].LikeCount = likes
	return created
}

func TestGetFeedHasMore(t *testing.T) {
	postRepo := newMockPostRepo()
	userRepo := newMockUserRepo()
	followRepo := newMockFollowRepo()
	svc := NewFeedService(postRepo, userRepo, followRepo)
	ctx := context.Background()

	username := "ada"
	author := seedUser(userRepo, "clerk-1", "Ada", &username)
	for i := 0; i < 3; i++ {
		seedPublishedPost(postRepo, author.ID, "Post", 0, 0, time.Now().Add(-time.Duration(i)*time.Hour))
	}

	feed, err := svc.GetFeed(ctx, nil, feedQuery(2))
	require.NoError(t, err)
	assert.Len(t, feed.Posts, 2)
	assert.True(t, feed.HasMore)

	feed, err = svc.GetFeed(ctx, nil, feedQuery(10))
	require.NoError(t, err)
	assert.Len(t, feed.Posts, 3)
	assert.False(t, feed.HasMore)
}

func TestGetFeedPrefersFollowedAuthors(t *testing.T) {
	postRepo := newMockPostRepo()
	userRepo := newMockUserRepo()
	followRepo := newMockFollowRepo()
	svc := NewFeedService(postRepo, userRepo, followRepo)
	ctx := context.Background()

	me := seedUser(userRepo, "clerk-me", "Me", nil)
	adaName := "ada"
	ada := seedUser(userRepo, "clerk-ada", "Ada", &adaName)
	bobName := "bob"
	bob := seedUser(userRepo, "clerk-bob", "Bob", &bobName)

	followedPost := seedPublishedPost(postRepo, ada.ID, "From Ada", 0, 0, time.Now().Add(-2*time.Hour))
	seedPublishedPost(postRepo, bob.ID, "From Bob", 0, 0, time.Now().Add(-time.Hour))

	_ = followRepo.CreateFollow(ctx, &model.Follow{FollowerID: me.ID, FollowingID: ada.ID})

	feed, err := svc.GetFeed(ctx, &me.ID, feedQuery(10))
	require.NoError(t, err)
	require.Len(t, feed.Posts, 1)
	assert.Equal(t, followedPost.ID, feed.Posts[0].ID)

	// 未登录看到全站信息流
	feed, err = svc.GetFeed(ctx, nil, feedQuery(10))
	require.NoError(t, err)
	assert.Len(t, feed.Posts, 2)
}

func TestSuggestedUsersScoringAndOrder(t *testing.T) {
	postRepo := newMockPostRepo()
	userRepo := newMockUserRepo()
	followRepo := newMockFollowRepo()
	svc := NewFeedService(postRepo, userRepo, followRepo)
	ctx := context.Background()

	me := seedUser(userRepo, "clerk-me", "Me", nil)

	// 高分但最近没发帖
	highName := "high_score"
	high := seedUser(userRepo, "clerk-high", "High", &highName)
	seedPublishedPost(postRepo, high.ID, "Old Hit", 1000, 100, time.Now().Add(-30*24*time.Hour))

	// 低分但 7 天内发过帖
	recentName := "recent_author"
	recent := seedUser(userRepo, "clerk-recent", "Recent", &recentName)
	seedPublishedPost(postRepo, recent.ID, "Fresh Post", 10, 1, time.Now().Add(-24*time.Hour))

	// 没有用户名的作者不进推荐
	noName := seedUser(userRepo, "clerk-anon", "Anon", nil)
	seedPublishedPost(postRepo, noName.ID, "Hidden", 500, 50, time.Now())

	// 已关注的作者不进推荐
	followedName := "followed"
	followed := seedUser(userRepo, "clerk-followed", "Followed", &followedName)
	seedPublishedPost(postRepo, followed.ID, "Followed Post", 500, 50, time.Now())
	_ = followRepo.CreateFollow(ctx, &model.Follow{FollowerID: me.ID, FollowingID: followed.ID})

	result, err := svc.GetSuggestedUsers(ctx, me.ID, 10)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// 近期活跃排第一，尽管得分更低
	assert.Equal(t, recent.ID, result[0].ID)
	assert.Equal(t, high.ID, result[1].ID)

	// 得分 = 浏览 + 5*点赞 + 10*粉丝
	assert.Equal(t, int64(1000+5*100), result[1].EngagementScore)
	assert.NotEmpty(t, result[0].RecentPosts)
}

func TestTrendingRankedByWeightedViews(t *testing.T) {
	postRepo := newMockPostRepo()
	userRepo := newMockUserRepo()
	followRepo := newMockFollowRepo()
	svc := NewFeedService(postRepo, userRepo, followRepo)
	ctx := context.Background()

	username := "ada"
	author := seedUser(userRepo, "clerk-1", "Ada", &username)

	// 100 + 5*0 = 100 分
	viewHeavy := seedPublishedPost(postRepo, author.ID, "View Heavy", 100, 0, time.Now().Add(-time.Hour))
	// 10 + 5*30 = 160 分
	likeHeavy := seedPublishedPost(postRepo, author.ID, "Like Heavy", 10, 30, time.Now().Add(-time.Hour))
	// 窗口之外不参与
	seedPublishedPost(postRepo, author.ID, "Stale", 9999, 9999, time.Now().Add(-30*24*time.Hour))

	result, err := svc.GetTrending(ctx, feedQuery(10))
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, likeHeavy.ID, result[0].ID)
	assert.Equal(t, viewHeavy.ID, result[1].ID)
}
