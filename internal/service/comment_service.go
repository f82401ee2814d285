package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	mongorepo "Inkwell/internal/pkg/mongo"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultCommentLimit = 100

type CommentService interface {
	AddComment(ctx context.Context, userID, postID uint64, req *dto.AddCommentDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID uint64, commentID string) error
}

type CommentServiceImpl struct {
	commentRepo mongorepo.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
}

func NewCommentService(commentRepo mongorepo.CommentRepo, postRepo repository.PostRepo, userRepo repository.UserRepo) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment 发表评论，直接置为已通过状态
func (s *CommentServiceImpl) AddComment(ctx context.Context, userID, postID uint64, req *dto.AddCommentDTO) (*dto.CommentDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != consts.PostStatusPublished {
		return nil, ErrNotFound
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	comment := &mongorepo.Comment{
		PostID:     postID,
		AuthorID:   userID,
		AuthorName: user.Name,
		Content:    req.Content,
		Status:     consts.CommentStatusApproved,
		CreatedAt:  time.Now(),
	}
	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		return nil, err
	}

	return toCommentDTO(comment), nil
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.GetCommentsByPost(ctx, postID, defaultCommentLimit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toCommentDTO(comment))
	}
	return result, nil
}

// DeleteComment 删除评论，评论作者或帖子作者可操作
func (s *CommentServiceImpl) DeleteComment(ctx context.Context, userID uint64, commentID string) error {
	oid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return ErrNotFound
	}

	comment, err := s.commentRepo.GetCommentByID(ctx, oid)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}

	if comment.AuthorID != userID {
		post, err := s.postRepo.GetPostByID(ctx, comment.PostID)
		if err != nil {
			return err
		}
		if post == nil || post.AuthorID != userID {
			return ErrForbidden
		}
	}

	return s.commentRepo.DeleteComment(ctx, oid)
}

func toCommentDTO(comment *mongorepo.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:         comment.ID.Hex(),
		PostID:     comment.PostID,
		Content:    comment.Content,
		AuthorName: comment.AuthorName,
		AuthorID:   comment.AuthorID,
		Status:     comment.Status,
		CreatedAt:  comment.CreatedAt.UnixMilli(),
	}
}
