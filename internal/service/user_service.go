package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

type UserService interface {
	StoreUser(ctx context.Context, clerkID string, req *dto.StoreUserDTO) (*dto.UserDTO, error)
	GetCurrentUser(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	ChangeUsername(ctx context.Context, userID uint64, req *dto.ChangeUsernameDTO) (*dto.UserDTO, error)
	GetPublicUser(ctx context.Context, username string) (*dto.PublicUserDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// StoreUser 身份服务回传用户信息，按外部标识幂等落库
func (s *UserServiceImpl) StoreUser(ctx context.Context, clerkID string, req *dto.StoreUserDTO) (*dto.UserDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	now := time.Now()

	user, err := s.userRepo.GetUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &model.User{
			ClerkID:      clerkID,
			Name:         req.Name,
			Email:        req.Email,
			ImageURL:     req.ImageURL,
			LastActiveAt: now,
		}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	} else {
		user.Name = req.Name
		user.Email = req.Email
		user.ImageURL = req.ImageURL
		user.LastActiveAt = now
		if err := s.userRepo.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	return toUserDTO(user), nil
}

func (s *UserServiceImpl) GetCurrentUser(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return toUserDTO(user), nil
}

// ChangeUsername 设置用户名，格式校验加全局唯一，重复提交同名视为幂等
func (s *UserServiceImpl) ChangeUsername(ctx context.Context, userID uint64, req *dto.ChangeUsernameDTO) (*dto.UserDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	username := strings.TrimSpace(req.Username)
	if !usernamePattern.MatchString(username) {
		return nil, ErrUsernameFormat
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	owner, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if owner != nil && owner.ID != user.ID {
		return nil, ErrUsernameTaken
	}

	if user.Username == nil || *user.Username != username {
		if err := s.userRepo.UpdateUsername(ctx, user.ID, username); err != nil {
			// 并发抢注会绕过上面的预检查，唯一索引兜底
			if isDuplicateError(err) {
				return nil, ErrUsernameTaken
			}
			return nil, err
		}
		user.Username = &username

		now := time.Now()
		if err := s.userRepo.TouchLastActive(ctx, user.ID, now); err == nil {
			user.LastActiveAt = now
		}
	}

	return toUserDTO(user), nil
}

func (s *UserServiceImpl) GetPublicUser(ctx context.Context, username string) (*dto.PublicUserDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	result := &dto.PublicUserDTO{}
	if err := copier.Copy(result, user); err != nil {
		return nil, err
	}
	result.CreatedAt = user.CreatedAt.UnixMilli()
	return result, nil
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

func toUserDTO(user *model.User) *dto.UserDTO {
	result := &dto.UserDTO{}
	_ = copier.Copy(result, user)
	result.CreatedAt = user.CreatedAt.UnixMilli()
	result.LastActiveAt = user.LastActiveAt.UnixMilli()
	return result
}
