package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/anyrite/pixelblog-be/internal/models"
)

// CommentStore is an in-memory comment store.
type CommentStore struct {
	mu       sync.RWMutex
	comments map[string]models.Comment
}

// NewCommentStore creates an empty in-memory comment store.
func NewCommentStore() *CommentStore {
	return &CommentStore{comments: make(map[string]models.Comment)}
}

func (s *CommentStore) Insert(_ context.Context, comment models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[comment.ID] = comment
	return nil
}

func (s *CommentStore) ListByArticle(_ context.Context, articleID string) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := []models.Comment{}
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (s *CommentStore) DeleteByArticle(_ context.Context, articleID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, c := range s.comments {
		if c.ArticleID == articleID {
			delete(s.comments, id)
			removed++
		}
	}
	return removed, nil
}
