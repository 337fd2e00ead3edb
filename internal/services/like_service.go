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

// LikeServiceProvider defines the interface for like services.
type LikeServiceProvider interface {
	Like(ctx context.Context, actor models.User, articleID string) error
	Unlike(ctx context.Context, actor models.User, articleID string) error
	IsLiked(ctx context.Context, actor models.User, articleID string) (bool, error)
}

// LikeService provides business logic for article likes.
type LikeService struct {
	likes    store.LikeStore
	articles store.ArticleStore
}

// NewLikeService creates a new LikeService.
func NewLikeService(likes store.LikeStore, articles store.ArticleStore) *LikeService {
	return &LikeService{likes: likes, articles: articles}
}

// Like records the actor's like on an article and bumps the denormalized
// counter. Liking an already-liked article is a no-op success, so the
// counter only ever moves once per (article, user) pair. A duplicate insert
// slipping past the pre-check is caught by the store's uniqueness constraint
// and treated the same way.
func (s *LikeService) Like(ctx context.Context, actor models.User, articleID string) error {
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("article %s: %w", articleID, ErrNotFound)
		}
		return err
	}

	liked, err := s.likes.Exists(ctx, articleID, actor.ID)
	if err != nil {
		return err
	}
	if liked {
		return nil
	}

	like := models.Like{
		ID:        uuid.New().String(),
		ArticleID: articleID,
		UserID:    actor.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.likes.Insert(ctx, like); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil
		}
		return err
	}
	return s.articles.IncrementCounter(ctx, articleID, "likes_count", 1)
}

// Unlike removes the actor's like. The counter is decremented only when a
// like was actually removed; unliking a never-liked article is NotFound and
// leaves the counter untouched.
func (s *LikeService) Unlike(ctx context.Context, actor models.User, articleID string) error {
	removed, err := s.likes.DeleteByArticleAndUser(ctx, articleID, actor.ID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return fmt.Errorf("like on article %s: %w", articleID, ErrNotFound)
	}
	return s.articles.IncrementCounter(ctx, articleID, "likes_count", -1)
}

// IsLiked reports whether the actor has liked the article.
func (s *LikeService) IsLiked(ctx context.Context, actor models.User, articleID string) (bool, error) {
	return s.likes.Exists(ctx, articleID, actor.ID)
}
