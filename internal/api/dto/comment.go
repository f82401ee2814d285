package dto

// AddCommentDTO 发表评论
type AddCommentDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID         string `json:"id"`
	PostID     uint64 `json:"post_id"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
	AuthorID   uint64 `json:"author_id"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at"`
}
