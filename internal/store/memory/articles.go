package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anyrite/pixelblog-be/internal/models"
	"github.com/anyrite/pixelblog-be/internal/store"
)

// ArticleStore is an in-memory article store.
type ArticleStore struct {
	mu       sync.RWMutex
	articles map[string]models.Article
}

// NewArticleStore creates an empty in-memory article store.
func NewArticleStore() *ArticleStore {
	return &ArticleStore{articles: make(map[string]models.Article)}
}

func (s *ArticleStore) Insert(_ context.Context, article models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[article.ID]; ok {
		return store.ErrDuplicate
	}
	s.articles[article.ID] = article
	return nil
}

func (s *ArticleStore) GetByID(_ context.Context, id string) (models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	article, ok := s.articles[id]
	if !ok {
		return models.Article{}, store.ErrNotFound
	}
	return article, nil
}

func (s *ArticleStore) List(_ context.Context, filter store.ArticleFilter) ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Article{}
	for _, a := range s.articles {
		if filter.Tag != "" && !containsTag(a.Tags, filter.Tag) {
			continue
		}
		if filter.AuthorUsername != "" && a.AuthorUsername != filter.AuthorUsername {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s *ArticleStore) Patch(_ context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	article, ok := s.articles[id]
	if !ok {
		return store.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			article.Title = value.(string)
		case "content":
			article.Content = value.(string)
		case "tags":
			article.Tags = value.([]string)
		case "cover_image":
			article.CoverImage = value.(string)
		case "updated_at":
			article.UpdatedAt = value.(time.Time)
		}
	}
	s.articles[id] = article
	return nil
}

func (s *ArticleStore) IncrementCounter(_ context.Context, id, field string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	article, ok := s.articles[id]
	if !ok {
		return store.ErrNotFound
	}
	switch field {
	case "likes_count":
		article.LikesCount += delta
	case "comments_count":
		article.CommentsCount += delta
	}
	s.articles[id] = article
	return nil
}

func (s *ArticleStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.articles, id)
	return nil
}
