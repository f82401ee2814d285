package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint64]*model.User)}
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uint64) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) GetUserByClerkID(_ context.Context, clerkID string) (*model.User, error) {
	for _, user := range m.users {
		if user.ClerkID == clerkID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range m.users {
		if user.Username != nil && *user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *model.User) error {
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) UpdateUsername(_ context.Context, id uint64, username string) error {
	if user, ok := m.users[id]; ok {
		name := username
		user.Username = &name
	}
	return nil
}

func (m *mockUserRepo) TouchLastActive(_ context.Context, id uint64, at time.Time) error {
	if user, ok := m.users[id]; ok {
		user.LastActiveAt = at
	}
	return nil
}

func (m *mockUserRepo) ListUsersByIDs(_ context.Context, ids []uint64) ([]*model.User, error) {
	var result []*model.User
	for _, id := range ids {
		if user, ok := m.users[id]; ok {
			copied := *user
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockUserRepo) ListCandidates(_ context.Context, excludeIDs []uint64, limit int) ([]*model.User, error) {
	excluded := make(map[uint64]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var result []*model.User
	for _, user := range m.users {
		if excluded[user.ID] {
			continue
		}
		copied := *user
		result = append(result, &copied)
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func seedUser(repo *mockUserRepo, clerkID, name string, username *string) *model.User {
	user := &model.User{ClerkID: clerkID, Name: name, Email: name + "@example.com", Username: username}
	_ = repo.CreateUser(context.Background(), user)
	if username != nil {
		repo.users[user.ID].Username = username
	}
	return user
}

func TestStoreUserIdempotent(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	first, err := svc.StoreUser(ctx, "clerk-1", &dto.StoreUserDTO{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	second, err := svc.StoreUser(ctx, "clerk-1", &dto.StoreUserDTO{Name: "Ada L.", Email: "ada@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ada L.", second.Name)
	assert.Len(t, repo.users, 1)
}

func TestChangeUsernameFormat(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()
	user := seedUser(repo, "clerk-1", "Ada", nil)

	cases := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"valid", "ada_lovelace", nil},
		{"valid with hyphen", "ada-l", nil},
		{"too short", "ab", ErrInvalidInput},
		{"too long", "abcdefghijklmnopqrstu", ErrInvalidInput},
		{"illegal chars", "ada!lace", ErrUsernameFormat},
		{"spaces", "ada love", ErrUsernameFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ChangeUsername(ctx, user.ID, &dto.ChangeUsernameDTO{Username: tc.username})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChangeUsernameUniqueness(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	taken := "taken_name"
	seedUser(repo, "clerk-1", "Ada", &taken)
	other := seedUser(repo, "clerk-2", "Bob", nil)

	_, err := svc.ChangeUsername(ctx, other.ID, &dto.ChangeUsernameDTO{Username: "taken_name"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// 重复提交自己已有的用户名视为幂等
	owner, _ := repo.GetUserByClerkID(ctx, "clerk-1")
	result, err := svc.ChangeUsername(ctx, owner.ID, &dto.ChangeUsernameDTO{Username: "taken_name"})
	require.NoError(t, err)
	assert.Equal(t, "taken_name", *result.Username)
}

func TestGetPublicUserNotFound(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	_, err := svc.GetPublicUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
