package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepo interface {
	SaveComment(ctx context.Context, comment *Comment) error
	GetCommentByID(ctx context.Context, id primitive.ObjectID) (*Comment, error)
	GetCommentsByPost(ctx context.Context, postID uint64, limit int) ([]*Comment, error)
	CountCommentsByPosts(ctx context.Context, postIDs []uint64) (int64, error)
	DeleteComment(ctx context.Context, id primitive.ObjectID) error
}

type commentRepoImpl struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &commentRepoImpl{
		col: db.Collection("comments"),
	}
}

// SaveComment 将评论存入 MongoDB
func (s *commentRepoImpl) SaveComment(ctx context.Context, comment *Comment) error {
	res, err := s.col.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid
	}
	return nil
}

func (s *commentRepoImpl) GetCommentByID(ctx context.Context, id primitive.ObjectID) (*Comment, error) {
	var comment Comment
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPost 查询帖子下已通过的评论，最新的在前
func (s *commentRepoImpl) GetCommentsByPost(ctx context.Context, postID uint64, limit int) ([]*Comment, error) {
	filter := bson.M{
		"post_id": postID,
		"status":  "approved",
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var comments []*Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

// CountCommentsByPosts 统计一批帖子下已通过的评论总数
func (s *commentRepoImpl) CountCommentsByPosts(ctx context.Context, postIDs []uint64) (int64, error) {
	if len(postIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{
		"post_id": bson.M{"$in": postIDs},
		"status":  "approved",
	}
	return s.col.CountDocuments(ctx, filter)
}

func (s *commentRepoImpl) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
