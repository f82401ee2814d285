package dto

// StoreUserDTO 身份服务回传的用户信息，幂等落库
type StoreUserDTO struct {
	Name     string `json:"name" binding:"required" validate:"min=1,max=100"`
	Email    string `json:"email" binding:"required" validate:"email"`
	ImageURL string `json:"image_url"`
}

// ChangeUsernameDTO 设置用户名
type ChangeUsernameDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=20"`
}

// UserDTO 用户
type UserDTO struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email,omitempty"`
	Username     *string `json:"username"`
	ImageURL     string  `json:"image_url"`
	CreatedAt    int64   `json:"created_at"`
	LastActiveAt int64   `json:"last_active_at,omitempty"`
}

// PublicUserDTO 公开主页用户信息，只暴露公共字段
type PublicUserDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Username  *string `json:"username"`
	ImageURL  string  `json:"image_url"`
	CreatedAt int64   `json:"created_at"`
}

// AuthorDTO 帖子冗余的作者摘要
type AuthorDTO struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Username *string `json:"username"`
	ImageURL string  `json:"image_url"`
}
