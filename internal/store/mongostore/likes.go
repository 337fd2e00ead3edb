package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anyrite/pixelblog-be/internal/models"
)

type likeDoc struct {
	ID        string `bson:"id"`
	ArticleID string `bson:"article_id"`
	UserID    string `bson:"user_id"`
	CreatedAt string `bson:"created_at"`
}

// LikeStore is the MongoDB-backed like collection.
type LikeStore struct {
	col *mongo.Collection
}

// NewLikeStore creates a LikeStore on the "likes" collection.
func NewLikeStore(db *mongo.Database) *LikeStore {
	return &LikeStore{col: db.Collection("likes")}
}

// Insert adds a like. The unique (article_id, user_id) index makes a
// concurrent double-like surface as store.ErrDuplicate rather than a second
// document.
func (s *LikeStore) Insert(ctx context.Context, like models.Like) error {
	doc := likeDoc{
		ID:        like.ID,
		ArticleID: like.ArticleID,
		UserID:    like.UserID,
		CreatedAt: encodeTime(like.CreatedAt),
	}
	_, err := s.col.InsertOne(ctx, doc)
	return wrapErr(err)
}

func (s *LikeStore) Exists(ctx context.Context, articleID, userID string) (bool, error) {
	err := s.col.FindOne(ctx, bson.M{"article_id": articleID, "user_id": userID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, wrapErr(err)
	}
	return true, nil
}

func (s *LikeStore) DeleteByArticleAndUser(ctx context.Context, articleID, userID string) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"article_id": articleID, "user_id": userID})
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.DeletedCount, nil
}

func (s *LikeStore) DeleteByArticle(ctx context.Context, articleID string) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{"article_id": articleID})
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.DeletedCount, nil
}
