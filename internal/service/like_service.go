package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/repository"
	"context"
)

type LikeService interface {
	ToggleLike(ctx context.Context, userID, postID uint64) (*dto.LikeStateDTO, error)
	GetLikeState(ctx context.Context, userID, postID uint64) (*dto.LikeStateDTO, error)
}

type LikeServiceImpl struct {
	likeRepo repository.LikeRepo
	postRepo repository.PostRepo
}

func NewLikeService(likeRepo repository.LikeRepo, postRepo repository.PostRepo) LikeService {
	return &LikeServiceImpl{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// ToggleLike 点赞/取消点赞，帖子计数随真实增删同步变化
func (s *LikeServiceImpl) ToggleLike(ctx context.Context, userID, postID uint64) (*dto.LikeStateDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != consts.PostStatusPublished {
		return nil, ErrNotFound
	}

	liked, err := s.likeRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if liked {
		removed, err := s.likeRepo.DeleteLike(ctx, userID, postID)
		if err != nil {
			return nil, err
		}
		if removed && post.LikeCount > 0 {
			if err := s.postRepo.IncrementLikeCount(ctx, postID, -1); err != nil {
				return nil, err
			}
		}
		return &dto.LikeStateDTO{Liked: false}, nil
	}

	added, err := s.likeRepo.CreateLike(ctx, &model.Like{UserID: userID, PostID: postID})
	if err != nil {
		return nil, err
	}
	if added {
		if err := s.postRepo.IncrementLikeCount(ctx, postID, 1); err != nil {
			return nil, err
		}
	}
	return &dto.LikeStateDTO{Liked: true}, nil
}

func (s *LikeServiceImpl) GetLikeState(ctx context.Context, userID, postID uint64) (*dto.LikeStateDTO, error) {
	liked, err := s.likeRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStateDTO{Liked: liked}, nil
}
