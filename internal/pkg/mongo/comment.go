package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment 帖子评论文档
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PostID     uint64             `bson:"post_id"`
	AuthorID   uint64             `bson:"author_id"`
	AuthorName string             `bson:"author_name"`
	Content    string             `bson:"content"`
	Status     string             `bson:"status"` // approved / pending
	CreatedAt  time.Time          `bson:"created_at"`
}
