package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anyrite/pixelblog-be/internal/models"
)

type commentDoc struct {
	ID        string `bson:"id"`
	ArticleID string `bson:"article_id"`
	UserID    string `bson:"user_id"`
	Username  string `bson:"username"`
	Content   string `bson:"content"`
	CreatedAt string `bson:"created_at"`
}

func (d commentDoc) toModel() (models.Comment, error) {
	createdAt, err := decodeTime(d.CreatedAt)
	if err != nil {
		return models.Comment{}, err
	}
	return models.Comment{
		ID:        d.ID,
		ArticleID: d.ArticleID,
		UserID:    d.UserID,
		Username:  d.Username,
		Content:   d.Content,
		CreatedAt: createdAt,
	}, nil
}

// CommentStore is the MongoDB-backed comment collection.
type CommentStore struct {
	col *mongo.Collection
}

// NewCommentStore creates a CommentStore on the "comments" collection.
func NewCommentStore(db *mongo.Database) *CommentStore {
	return &CommentStore{col: db.Collection("comments")}
}

func (s *CommentStore) Insert(ctx context.Context, comment models.Comment) error {
	doc := commentDoc{
		ID:        comment.ID,
		ArticleID: comment.ArticleID,
		UserID:    comment.UserID,
		Username:  comment.Username,
		Content:   comment.Content,
		CreatedAt: encodeTime(comment.CreatedAt),
	}
	_, err := s.col.InsertOne(ctx, doc)
	return wrapErr(err)
}

func (s *CommentStore) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{"article_id": articleID}, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cur.Close(ctx)

	comments := []models.Comment{}
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		comment, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, cur.Err()
}

func (s *CommentStore) DeleteByArticle(ctx context.Context, articleID string) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{"article_id": articleID})
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.DeletedCount, nil
}
