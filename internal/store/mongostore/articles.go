package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anyrite/pixelblog-be/internal/models"
	"github.com/anyrite/pixelblog-be/internal/store"
)

type articleDoc struct {
	ID             string   `bson:"id"`
	AuthorID       string   `bson:"author_id"`
	AuthorUsername string   `bson:"author_username"`
	Title          string   `bson:"title"`
	Content        string   `bson:"content"`
	Tags           []string `bson:"tags"`
	CoverImage     string   `bson:"cover_image"`
	LikesCount     int      `bson:"likes_count"`
	CommentsCount  int      `bson:"comments_count"`
	CreatedAt      string   `bson:"created_at"`
	UpdatedAt      string   `bson:"updated_at"`
}

func toArticleDoc(a models.Article) articleDoc {
	return articleDoc{
		ID:             a.ID,
		AuthorID:       a.AuthorID,
		AuthorUsername: a.AuthorUsername,
		Title:          a.Title,
		Content:        a.Content,
		Tags:           a.Tags,
		CoverImage:     a.CoverImage,
		LikesCount:     a.LikesCount,
		CommentsCount:  a.CommentsCount,
		CreatedAt:      encodeTime(a.CreatedAt),
		UpdatedAt:      encodeTime(a.UpdatedAt),
	}
}

func (d articleDoc) toModel() (models.Article, error) {
	createdAt, err := decodeTime(d.CreatedAt)
	if err != nil {
		return models.Article{}, err
	}
	updatedAt, err := decodeTime(d.UpdatedAt)
	if err != nil {
		return models.Article{}, err
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Article{
		ID:             d.ID,
		AuthorID:       d.AuthorID,
		AuthorUsername: d.AuthorUsername,
		Title:          d.Title,
		Content:        d.Content,
		Tags:           tags,
		CoverImage:     d.CoverImage,
		LikesCount:     d.LikesCount,
		CommentsCount:  d.CommentsCount,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

// ArticleStore is the MongoDB-backed article collection.
type ArticleStore struct {
	col *mongo.Collection
}

// NewArticleStore creates an ArticleStore on the "articles" collection.
func NewArticleStore(db *mongo.Database) *ArticleStore {
	return &ArticleStore{col: db.Collection("articles")}
}

func (s *ArticleStore) Insert(ctx context.Context, article models.Article) error {
	_, err := s.col.InsertOne(ctx, toArticleDoc(article))
	return wrapErr(err)
}

func (s *ArticleStore) GetByID(ctx context.Context, id string) (models.Article, error) {
	var doc articleDoc
	if err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return models.Article{}, wrapErr(err)
	}
	return doc.toModel()
}

func (s *ArticleStore) List(ctx context.Context, filter store.ArticleFilter) ([]models.Article, error) {
	query := bson.M{}
	if filter.Tag != "" {
		// Matching a scalar against an array field selects documents whose
		// tags contain the value.
		query["tags"] = filter.Tag
	}
	if filter.AuthorUsername != "" {
		query["author_username"] = filter.AuthorUsername
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cur.Close(ctx)

	articles := []models.Article{}
	for cur.Next(ctx) {
		var doc articleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		article, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, cur.Err()
}

func (s *ArticleStore) Patch(ctx context.Context, id string, fields map[string]any) error {
	set := bson.M{}
	for key, value := range fields {
		// Timestamps are kept as RFC3339 strings in the document.
		if t, ok := value.(time.Time); ok {
			set[key] = encodeTime(t)
			continue
		}
		set[key] = value
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ArticleStore) IncrementCounter(ctx context.Context, id, field string, delta int) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ArticleStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
