package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/anyrite/pixelblog-be/internal/models"
	"github.com/anyrite/pixelblog-be/internal/store"
)

// ArticleInput carries the fields for a new article.
type ArticleInput struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"cover_image"`
}

// ArticleServiceProvider defines the interface for article services.
type ArticleServiceProvider interface {
	List(ctx context.Context, tag, author string) ([]models.Article, error)
	GetByID(ctx context.Context, id string) (models.Article, error)
	Create(ctx context.Context, actor models.User, input ArticleInput) (models.Article, error)
	Update(ctx context.Context, actor models.User, id string, patch models.ArticlePatch) (models.Article, error)
	Delete(ctx context.Context, actor models.User, id string) error
}

// ArticleService provides business logic for article management.
type ArticleService struct {
	articles store.ArticleStore
	comments store.CommentStore
	likes    store.LikeStore
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articles store.ArticleStore, comments store.CommentStore, likes store.LikeStore) *ArticleService {
	return &ArticleService{articles: articles, comments: comments, likes: likes}
}

// List returns articles newest first, optionally narrowed to those carrying
// a tag and/or written by an author username.
func (s *ArticleService) List(ctx context.Context, tag, author string) ([]models.Article, error) {
	return s.articles.List(ctx, store.ArticleFilter{Tag: tag, AuthorUsername: author})
}

// GetByID retrieves a single article.
func (s *ArticleService) GetByID(ctx context.Context, id string) (models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Article{}, fmt.Errorf("article %s: %w", id, ErrNotFound)
		}
		return models.Article{}, err
	}
	return article, nil
}

// Create publishes a new article for the actor, snapshotting their username.
// Counters start at zero.
func (s *ArticleService) Create(ctx context.Context, actor models.User, input ArticleInput) (models.Article, error) {
	if input.Title == "" || input.Content == "" {
		return models.Article{}, fmt.Errorf("title and content are required: %w", ErrInvalid)
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	article := models.Article{
		ID:             uuid.New().String(),
		AuthorID:       actor.ID,
		AuthorUsername: actor.Username,
		Title:          input.Title,
		Content:        input.Content,
		Tags:           tags,
		CoverImage:     input.CoverImage,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.articles.Insert(ctx, article); err != nil {
		return models.Article{}, err
	}
	return article, nil
}

// Update applies a partial patch to the actor's own article. Only provided
// fields change, but updated_at is refreshed on every call, whether or not
// anything else did.
func (s *ArticleService) Update(ctx context.Context, actor models.User, id string, patch models.ArticlePatch) (models.Article, error) {
	article, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Article{}, err
	}
	if err := authorizeMutation(article.AuthorID, actor.ID); err != nil {
		return models.Article{}, err
	}

	fields := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Content != nil {
		fields["content"] = *patch.Content
	}
	if patch.Tags != nil {
		fields["tags"] = *patch.Tags
	}
	if patch.CoverImage != nil {
		fields["cover_image"] = *patch.CoverImage
	}

	if err := s.articles.Patch(ctx, id, fields); err != nil {
		return models.Article{}, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes the actor's own article, then cascades to its comments and
// likes. The cascade is sequential, not transactional: a failed step is
// logged and returned, leaving any remaining records orphaned.
func (s *ArticleService) Delete(ctx context.Context, actor models.User, id string) error {
	article, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeMutation(article.AuthorID, actor.ID); err != nil {
		return err
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.comments.DeleteByArticle(ctx, id); err != nil {
		log.Error().Err(err).Str("article_id", id).Msg("Cascade delete of comments failed")
		return fmt.Errorf("cascade delete comments for article %s: %w", id, err)
	}
	if _, err := s.likes.DeleteByArticle(ctx, id); err != nil {
		log.Error().Err(err).Str("article_id", id).Msg("Cascade delete of likes failed")
		return fmt.Errorf("cascade delete likes for article %s: %w", id, err)
	}
	return nil
}
