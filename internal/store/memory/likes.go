package memory

import (
	"context"
	"sync"

	"github.com/anyrite/pixelblog-be/internal/models"
	"github.com/anyrite/pixelblog-be/internal/store"
)

// LikeStore is an in-memory like store. Insert enforces the one-like-per
// (article, user) pair the way the unique compound index does in MongoDB.
type LikeStore struct {
	mu    sync.Mutex
	likes map[string]models.Like
}

// NewLikeStore creates an empty in-memory like store.
func NewLikeStore() *LikeStore {
	return &LikeStore{likes: make(map[string]models.Like)}
}

func (s *LikeStore) Insert(_ context.Context, like models.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.likes {
		if l.ArticleID == like.ArticleID && l.UserID == like.UserID {
			return store.ErrDuplicate
		}
	}
	s.likes[like.ID] = like
	return nil
}

func (s *LikeStore) Exists(_ context.Context, articleID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.likes {
		if l.ArticleID == articleID && l.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *LikeStore) DeleteByArticleAndUser(_ context.Context, articleID, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, l := range s.likes {
		if l.ArticleID == articleID && l.UserID == userID {
			delete(s.likes, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *LikeStore) DeleteByArticle(_ context.Context, articleID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, l := range s.likes {
		if l.ArticleID == articleID {
			delete(s.likes, id)
			removed++
		}
	}
	return removed, nil
}
