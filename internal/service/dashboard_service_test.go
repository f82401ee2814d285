package service

import (
	"Inkwell/internal/model"
	mongorepo "Inkwell/internal/pkg/mongo"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockCommentRepo struct {
	comments map[primitive.ObjectID]*mongorepo.Comment
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[primitive.ObjectID]*mongorepo.Comment)}
}

func (m *mockCommentRepo) SaveComment(_ context.Context, comment *mongorepo.Comment) error {
	comment.ID = primitive.NewObjectID()
	copied := *comment
	m.comments[comment.ID] = &copied
	return nil
}

func (m *mockCommentRepo) GetCommentByID(_ context.Context, id primitive.ObjectID) (*mongorepo.Comment, error) {
	comment, ok := m.comments[id]
	if !ok {
		return nil, nil
	}
	copied := *comment
	return &copied, nil
}

func (m *mockCommentRepo) GetCommentsByPost(_ context.Context, postID uint64, limit int) ([]*mongorepo.Comment, error) {
	var result []*mongorepo.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID && comment.Status == "approved" {
			copied := *comment
			result = append(result, &copied)
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockCommentRepo) CountCommentsByPosts(_ context.Context, postIDs []uint64) (int64, error) {
	allowed := make(map[uint64]bool, len(postIDs))
	for _, id := range postIDs {
		allowed[id] = true
	}
	var count int64
	for _, comment := range m.comments {
		if allowed[comment.PostID] && comment.Status == "approved" {
			count++
		}
	}
	return count, nil
}

func (m *mockCommentRepo) DeleteComment(_ context.Context, id primitive.ObjectID) error {
	delete(m.comments, id)
	return nil
}

func TestGetAnalytics(t *testing.T) {
	postRepo := newMockPostRepo()
	followRepo := newMockFollowRepo()
	commentRepo := newMockCommentRepo()
	userRepo := newMockUserRepo()
	svc := NewDashboardService(postRepo, followRepo, commentRepo)
	ctx := context.Background()

	username := "ada"
	author := seedUser(userRepo, "clerk-1", "Ada", &username)

	// 老帖 900 浏览，近 30 天的帖子 100 浏览
	seedPublishedPost(postRepo, author.ID, "Old", 900, 10, time.Now().Add(-60*24*time.Hour))
	fresh := seedPublishedPost(postRepo, author.ID, "Fresh", 100, 10, time.Now().Add(-24*time.Hour))

	_ = commentRepo.SaveComment(ctx, &mongorepo.Comment{PostID: fresh.ID, Status: "approved"})
	_ = commentRepo.SaveComment(ctx, &mongorepo.Comment{PostID: fresh.ID, Status: "approved"})

	fan := seedUser(userRepo, "clerk-fan", "Fan", nil)
	_ = followRepo.CreateFollow(ctx, &model.Follow{FollowerID: fan.ID, FollowingID: author.ID})

	result, err := svc.GetAnalytics(ctx, author.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), result.TotalViews)
	assert.Equal(t, int64(20), result.TotalLikes)
	assert.Equal(t, int64(2), result.TotalComments)
	assert.Equal(t, int64(1), result.TotalFollowers)

	// 近 30 天 100 / 总量 1000 = 10%
	assert.InDelta(t, 10.0, result.ViewsGrowth, 0.01)
	assert.InDelta(t, 50.0, result.LikesGrowth, 0.01)
	assert.Equal(t, 15.0, result.CommentsGrowth)
	assert.Equal(t, 12.0, result.FollowersGrowth)
}

func TestGetAnalyticsEmptyAuthor(t *testing.T) {
	svc := NewDashboardService(newMockPostRepo(), newMockFollowRepo(), newMockCommentRepo())

	result, err := svc.GetAnalytics(context.Background(), 42)
	require.NoError(t, err)

	assert.Zero(t, result.TotalViews)
	assert.Zero(t, result.ViewsGrowth)
	assert.Zero(t, result.CommentsGrowth)
	assert.Zero(t, result.FollowersGrowth)
}
