package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anyrite/pixelblog-be/internal/models"
	"github.com/anyrite/pixelblog-be/internal/store"
)

// CommentServiceProvider defines the interface for comment services.
type CommentServiceProvider interface {
	ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error)
	Create(ctx context.Context, actor models.User, articleID, content string) (models.Comment, error)
}

// CommentService provides business logic for comments.
type CommentService struct {
	comments store.CommentStore
	articles store.ArticleStore
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments store.CommentStore, articles store.ArticleStore) *CommentService {
	return &CommentService{comments: comments, articles: articles}
}

// ListByArticle returns an article's comments, newest first.
func (s *CommentService) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	return s.comments.ListByArticle(ctx, articleID)
}

// Create adds a comment to an existing article and bumps its denormalized
// comment counter. Any authenticated user may comment.
func (s *CommentService) Create(ctx context.Context, actor models.User, articleID, content string) (models.Comment, error) {
	if content == "" {
		return models.Comment{}, fmt.Errorf("content is required: %w", ErrInvalid)
	}

	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Comment{}, fmt.Errorf("article %s: %w", articleID, ErrNotFound)
		}
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		ArticleID: articleID,
		UserID:    actor.ID,
		Username:  actor.Username,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Insert(ctx, comment); err != nil {
		return models.Comment{}, err
	}
	if err := s.articles.IncrementCounter(ctx, articleID, "comments_count", 1); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}
