package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	redisutil "Inkwell/internal/pkg/redis"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

const followerCountTTL = 10 * time.Minute

type FollowService interface {
	Follow(ctx context.Context, userID, targetID uint64) error
	Unfollow(ctx context.Context, userID, targetID uint64) error
	GetFollowState(ctx context.Context, userID, targetID uint64) (*dto.FollowStateDTO, error)
	GetFollowerCount(ctx context.Context, targetID uint64) (int64, error)
	ListFollowers(ctx context.Context, targetID uint64, req *dto.FollowListDTO) ([]*dto.PublicUserDTO, error)
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow 关注用户，重复关注幂等
func (s *FollowServiceImpl) Follow(ctx context.Context, userID, targetID uint64) error {
	if userID == targetID {
		return ErrFollowSelf
	}

	target, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}

	err = s.followRepo.CreateFollow(ctx, &model.Follow{
		FollowerID:  userID,
		FollowingID: targetID,
	})
	if err != nil {
		return err
	}

	s.invalidateFollowerCount(ctx, targetID)
	return nil
}

func (s *FollowServiceImpl) Unfollow(ctx context.Context, userID, targetID uint64) error {
	if err := s.followRepo.DeleteFollow(ctx, userID, targetID); err != nil {
		return err
	}
	s.invalidateFollowerCount(ctx, targetID)
	return nil
}

func (s *FollowServiceImpl) GetFollowState(ctx context.Context, userID, targetID uint64) (*dto.FollowStateDTO, error) {
	following, err := s.followRepo.IsFollowing(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	return &dto.FollowStateDTO{Following: following}, nil
}

// GetFollowerCount 粉丝数，Redis 缓存优先，未命中回源数据库
func (s *FollowServiceImpl) GetFollowerCount(ctx context.Context, targetID uint64) (int64, error) {
	key := consts.UserFollowerCountKey + strconv.FormatUint(targetID, 10)

	cached, err := redisutil.GetValue(ctx, key)
	if err == nil && cached != "" {
		if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
			return count, nil
		}
	}

	count, err := s.followRepo.CountFollowers(ctx, targetID)
	if err != nil {
		return 0, err
	}

	if err := redisutil.SetWithExpiration(ctx, key, strconv.FormatInt(count, 10), followerCountTTL); err != nil {
		log.WarnContext(ctx, "cache follower count failed", "user_id", targetID, "err", err)
	}
	return count, nil
}

func (s *FollowServiceImpl) ListFollowers(ctx context.Context, targetID uint64, req *dto.FollowListDTO) ([]*dto.PublicUserDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	ids, err := s.followRepo.ListFollowerIDs(ctx, targetID, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PublicUserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, &dto.PublicUserDTO{
			ID:        user.ID,
			Name:      user.Name,
			Username:  user.Username,
			ImageURL:  user.ImageURL,
			CreatedAt: user.CreatedAt.UnixMilli(),
		})
	}
	return result, nil
}

func (s *FollowServiceImpl) invalidateFollowerCount(ctx context.Context, targetID uint64) {
	key := consts.UserFollowerCountKey + strconv.FormatUint(targetID, 10)
	if err := redisutil.DeleteKey(ctx, key); err != nil {
		log.WarnContext(ctx, "invalidate follower count failed", "user_id", targetID, "err", err)
	}
}
