package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/es"
	"Inkwell/internal/repository"
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPostRepo struct {
	posts  map[uint64]*model.Post
	nextID uint64
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[uint64]*model.Post)}
}

func (m *mockPostRepo) GetPostByID(_ context.Context, id uint64) (*model.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (m *mockPostRepo) GetPostWithAuthor(ctx context.Context, id uint64) (*model.Post, error) {
	return m.GetPostByID(ctx, id)
}

func (m *mockPostRepo) GetDraftByAuthor(_ context.Context, authorID uint64) (*model.Post, error) {
	for _, post := range m.posts {
		if post.AuthorID == authorID && post.Status == consts.PostStatusDraft {
			copied := *post
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockPostRepo) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	existing, _ := m.GetDraftByAuthor(ctx, post.AuthorID)
	if existing != nil {
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
		existing.UpdatedAt = time.Now()
		m.posts[existing.ID] = existing
		*post = *existing
		return post, nil
	}
	m.nextID++
	post.ID = m.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	copied := *post
	m.posts[post.ID] = &copied
	return post, nil
}

func (m *mockPostRepo) SavePost(_ context.Context, post *model.Post) error {
	post.UpdatedAt = time.Now()
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *mockPostRepo) DeletePost(_ context.Context, id uint64) error {
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) ListByAuthor(_ context.Context, authorID uint64, status *string) ([]*model.Post, error) {
	var result []*model.Post
	for _, post := range m.posts {
		if post.AuthorID != authorID {
			continue
		}
		if status != nil && post.Status != *status {
			continue
		}
		copied := *post
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockPostRepo) ListPublishedByAuthors(_ context.Context, authorIDs []uint64, limit int) ([]*model.Post, error) {
	allowed := make(map[uint64]bool, len(authorIDs))
	for _, id := range authorIDs {
		allowed[id] = true
	}
	var result []*model.Post
	for _, post := range m.posts {
		if allowed[post.AuthorID] && post.Status == consts.PostStatusPublished {
			copied := *post
			result = append(result, &copied)
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockPostRepo) ListRecentPublished(_ context.Context, limit int) ([]*model.Post, error) {
	var result []*model.Post
	for _, post := range m.posts {
		if post.Status == consts.PostStatusPublished {
			copied := *post
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PublishedAt != nil && result[j].PublishedAt != nil &&
			result[i].PublishedAt.After(*result[j].PublishedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockPostRepo) LatestPublishedByAuthor(_ context.Context, authorID uint64, n int) ([]*model.Post, error) {
	var result []*model.Post
	for _, post := range m.posts {
		if post.AuthorID == authorID && post.Status == consts.PostStatusPublished {
			copied := *post
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PublishedAt != nil && result[j].PublishedAt != nil &&
			result[i].PublishedAt.After(*result[j].PublishedAt)
	})
	if len(result) > n {
		result = result[:n]
	}
	return result, nil
}

func (m *mockPostRepo) ListTrending(_ context.Context, since time.Time, limit int) ([]*model.Post, error) {
	var result []*model.Post
	for _, post := range m.posts {
		if post.Status == consts.PostStatusPublished && post.PublishedAt != nil && post.PublishedAt.After(since) {
			copied := *post
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ViewCount+result[i].LikeCount*5 > result[j].ViewCount+result[j].LikeCount*5
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockPostRepo) IncrementViewCount(_ context.Context, id uint64, delta int64) error {
	if post, ok := m.posts[id]; ok {
		post.ViewCount += delta
	}
	return nil
}

func (m *mockPostRepo) IncrementLikeCount(_ context.Context, id uint64, delta int64) error {
	if post, ok := m.posts[id]; ok {
		post.LikeCount += delta
	}
	return nil
}

func (m *mockPostRepo) GetAuthorStats(_ context.Context, authorID uint64) (*repository.AuthorStats, error) {
	stats := &repository.AuthorStats{}
	for _, post := range m.posts {
		if post.AuthorID != authorID {
			continue
		}
		stats.TotalPosts++
		if post.Status == consts.PostStatusPublished {
			stats.PublishedPosts++
		}
		stats.TotalViews += post.ViewCount
		stats.TotalLikes += post.LikeCount
	}
	return stats, nil
}

func (m *mockPostRepo) GetRecentAuthorTotals(_ context.Context, authorID uint64, since time.Time) (*repository.RecentTotals, error) {
	totals := &repository.RecentTotals{}
	for _, post := range m.posts {
		if post.AuthorID == authorID && post.Status == consts.PostStatusPublished &&
			post.PublishedAt != nil && post.PublishedAt.After(since) {
			totals.Views += post.ViewCount
			totals.Likes += post.LikeCount
		}
	}
	return totals, nil
}

type mockPostESRepo struct {
	indexed map[uint64]*es.PostES
	deleted map[uint64]bool
}

func newMockPostESRepo() *mockPostESRepo {
	return &mockPostESRepo{
		indexed: make(map[uint64]*es.PostES),
		deleted: make(map[uint64]bool),
	}
}

func (m *mockPostESRepo) IndexPost(_ context.Context, post *es.PostES) error {
	m.indexed[post.ID] = post
	delete(m.deleted, post.ID)
	return nil
}

func (m *mockPostESRepo) DeletePost(_ context.Context, id uint64) error {
	delete(m.indexed, id)
	m.deleted[id] = true
	return nil
}

func (m *mockPostESRepo) SearchPosts(_ context.Context, _ string, _, _ int) ([]*es.PostES, error) {
	var result []*es.PostES
	for _, post := range m.indexed {
		result = append(result, post)
	}
	return result, nil
}

func newPostServiceForTest() (PostService, *mockPostRepo, *mockUserRepo, *mockPostESRepo) {
	postRepo := newMockPostRepo()
	userRepo := newMockUserRepo()
	esRepo := newMockPostESRepo()
	return NewPostService(postRepo, userRepo, esRepo), postRepo, userRepo, esRepo
}

func TestCreatePostRequiresUsername(t *testing.T) {
	svc, _, userRepo, _ := newPostServiceForTest()
	user := seedUser(userRepo, "clerk-1", "Ada", nil)

	_, err := svc.CreatePost(context.Background(), user.ID, &dto.UpsertPostDTO{
		Title:  "First Draft",
		Status: consts.PostStatusDraft,
	})
	assert.ErrorIs(t, err, ErrUsernameRequired)
}

func TestCreateDraftReusesExisting(t *testing.T) {
	svc, postRepo, userRepo, _ := newPostServiceForTest()
	username := "ada"
	user := seedUser(userRepo, "clerk-1", "Ada", &username)
	ctx := context.Background()

	first, err := svc.CreatePost(ctx, user.ID, &dto.UpsertPostDTO{
		Title:  "Draft One",
		Status: consts.PostStatusDraft,
	})
	require.NoError(t, err)

	second, err := svc.CreatePost(ctx, user.ID, &dto.UpsertPostDTO{
		Title:  "Draft Two",
		Status: consts.PostStatusDraft,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Draft Two", second.Title)
	assert.Len(t, postRepo.posts, 1)
}

func TestPublishPreservesIDAndPublishedAt(t *testing.T) {
	svc, _, userRepo, esRepo := newPostServiceForTest()
	username := "ada"
	user := seedUser(userRepo, "clerk-1", "Ada", &username)
	ctx := context.Background()

	draft, err := svc.CreatePost(ctx, user.ID, &dto.UpsertPostDTO{
		Title:  "My Post",
		Status: consts.PostStatusDraft,
	})
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt)

	published := consts.PostStatusPublished
	result, err := svc.UpdatePost(ctx, user.ID, draft.ID, &dto.PatchPostDTO{Status: &published})
	require.NoError(t, err)
	assert.Equal(t, draft.ID, result.ID)
	require.NotNil(t, result.PublishedAt)
	firstPublishedAt := *result.PublishedAt

	// 发布后帖子进入搜索索引
	assert.Contains(t, esRepo.indexed, draft.ID)

	// 再次发布不刷新 published_at
	time.Sleep(2 * time.Millisecond)
	again, err := svc.UpdatePost(ctx, user.ID, draft.ID, &dto.PatchPostDTO{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.Equal(t, firstPublishedAt, *again.PublishedAt)
}

func TestPublishWithExistingDraftPreservesIdentity(t *testing.T) {
	svc, postRepo, userRepo, esRepo := newPostServiceForTest()
	username := "ada"
	user := seedUser(userRepo, "clerk-1", "Ada", &username)
	ctx := context.Background()

	draft, err := svc.CreatePost(ctx, user.ID, &dto.UpsertPostDTO{
		Title:  "Draft In Progress",
		Status: consts.PostStatusDraft,
	})
	require.NoError(t, err)

	// 编辑后直接以发布状态提交，复用原草稿记录而不是另起一条
	published, err := svc.CreatePost(ctx, user.ID, &dto.UpsertPostDTO{
		Title:  "Final Title",
		Status: consts.PostStatusPublished,
	})
	require.NoError(t, err)

	assert.Equal(t, draft.ID, published.ID)
	assert.Equal(t, consts.PostStatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.Len(t, postRepo.posts, 1)
	assert.Contains(t, esRepo.indexed, draft.ID)

	// 原草稿已被消费，作者名下不再有草稿
	got, err := svc.GetMyDraft(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPublishedPostCannotRevertToDraft(t *testing.T) {
	svc, _, userRepo, _ := newPostServiceForTest()
	username := "ada"
	user := seedUser(userRepo, "clerk-1", "Ada", &username)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, user.ID, &dto.UpsertPostDTO{
		Title:  "Published Post",
		Status: consts.PostStatusPublished,
	})
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)

	draft := consts.PostStatusDraft
	_, err = svc.UpdatePost(ctx, user.ID, post.ID, &dto.PatchPostDTO{Status: &draft})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdatePostPartialPatch(t *testing.T) {
	svc, _, userRepo, _ := newPostServiceForTest()
	username := "ada"
	user := seedUser(userRepo, "clerk-1", "Ada", &username)
	ctx := context.Background()

	category := "tech"
	post, err := svc.CreatePost(ctx, user.ID, &dto.UpsertPostDTO{
		Title:    "Original Title",
		Content:  "original content",
		Status:   consts.PostStatusDraft,
		Tags:     []string{"go"},
		Category: &category,
	})
	require.NoError(t, err)

	newTitle := "Updated Title"
	result, err := svc.UpdatePost(ctx, user.ID, post.ID, &dto.PatchPostDTO{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Updated Title", result.Title)
	assert.Equal(t, "original content", result.Content)
	assert.Equal(t, []string{"go"}, result.Tags)
	require.NotNil(t, result.Category)
	assert.Equal(t, "tech", *result.Category)
}

func TestUpdatePostOwnership(t *testing.T) {
	svc, _, userRepo, _ := newPostServiceForTest()
	username := "ada"
	owner := seedUser(userRepo, "clerk-1", "Ada", &username)
	other := "bob"
	intruder := seedUser(userRepo, "clerk-2", "Bob", &other)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, owner.ID, &dto.UpsertPostDTO{
		Title:  "Private Draft",
		Status: consts.PostStatusDraft,
	})
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = svc.UpdatePost(ctx, intruder.ID, post.ID, &dto.PatchPostDTO{Title: &newTitle})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdatePost(ctx, owner.ID, 9999, &dto.PatchPostDTO{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeletePost(ctx, intruder.ID, post.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetMyDraft(t *testing.T) {
	svc, _, userRepo, _ := newPostServiceForTest()
	username := "ada"
	owner := seedUser(userRepo, "clerk-1", "Ada", &username)
	other := "bob"
	stranger := seedUser(userRepo, "clerk-2", "Bob", &other)
	ctx := context.Background()

	got, err := svc.GetMyDraft(ctx, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	draft, err := svc.CreatePost(ctx, owner.ID, &dto.UpsertPostDTO{
		Title:  "Work in Progress",
		Status: consts.PostStatusDraft,
	})
	require.NoError(t, err)

	got, err = svc.GetMyDraft(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, draft.ID, got.ID)

	got, err = svc.GetMyDraft(ctx, stranger.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetPostDraftVisibility(t *testing.T) {
	svc, _, userRepo, _ := newPostServiceForTest()
	username := "ada"
	owner := seedUser(userRepo, "clerk-1", "Ada", &username)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, owner.ID, &dto.UpsertPostDTO{
		Title:  "Secret Draft",
		Status: consts.PostStatusDraft,
	})
	require.NoError(t, err)

	// 作者可见
	got, err := svc.GetPost(ctx, &owner.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	// 匿名不可见
	_, err = svc.GetPost(ctx, nil, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
