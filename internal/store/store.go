// Package store defines the storage capabilities the services depend on.
// Implementations live in mongostore (production) and memory (tests).
package store

import (
	"context"
	"errors"

	"github.com/anyrite/pixelblog-be/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("store: duplicate")
)

// UserStore persists user accounts.
type UserStore interface {
	Insert(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	// ExistsByUsernameOrEmail reports whether any user holds either value.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// ArticleFilter narrows an article listing. Zero values mean "no filter".
type ArticleFilter struct {
	Tag            string
	AuthorUsername string
}

// ArticleStore persists articles. List results are ordered newest-created-first.
type ArticleStore interface {
	Insert(ctx context.Context, article models.Article) error
	GetByID(ctx context.Context, id string) (models.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]models.Article, error)
	// Patch applies the provided fields to the stored document.
	Patch(ctx context.Context, id string, fields map[string]any) error
	// IncrementCounter atomically adds delta to a named numeric field.
	// The increment must be applied by the store itself, not read-modify-written.
	IncrementCounter(ctx context.Context, id, field string, delta int) error
	Delete(ctx context.Context, id string) error
}

// CommentStore persists comments. List results are ordered newest-created-first.
type CommentStore interface {
	Insert(ctx context.Context, comment models.Comment) error
	ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error)
	DeleteByArticle(ctx context.Context, articleID string) (int64, error)
}

// LikeStore persists likes.
type LikeStore interface {
	Insert(ctx context.Context, like models.Like) error
	Exists(ctx context.Context, articleID, userID string) (bool, error)
	// DeleteByArticleAndUser removes the actor's like, reporting how many
	// documents were actually removed.
	DeleteByArticleAndUser(ctx context.Context, articleID, userID string) (int64, error)
	DeleteByArticle(ctx context.Context, articleID string) (int64, error)
}
