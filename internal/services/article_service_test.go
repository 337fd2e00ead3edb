package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyrite/pixelblog-be/internal/models"
)

func TestArticleService_Create(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustRegister(t, "alice")

	t.Run("snapshots the author and zeroes counters", func(t *testing.T) {
		article, err := env.articleService.Create(ctx, alice, ArticleInput{
			Title:   "Hello",
			Content: "World",
			Tags:    []string{"go", "blog"},
		})
		require.NoError(t, err)
		assert.Equal(t, alice.ID, article.AuthorID)
		assert.Equal(t, "alice", article.AuthorUsername)
		assert.Zero(t, article.LikesCount)
		assert.Zero(t, article.CommentsCount)
		assert.Equal(t, article.CreatedAt, article.UpdatedAt)
	})

	t.Run("missing title is invalid", func(t *testing.T) {
		_, err := env.articleService.Create(ctx, alice, ArticleInput{Content: "body"})
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestArticleService_List(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")

	older := env.mustCreateArticle(t, alice, "Older", "go")
	env.mustCreateArticle(t, alice, "Middle", "rust")
	newer := env.mustCreateArticle(t, bob, "Newer", "go")

	t.Run("tag filter returns exactly the tagged set, newest first", func(t *testing.T) {
		articles, err := env.articleService.List(ctx, "go", "")
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, newer.ID, articles[0].ID)
		assert.Equal(t, older.ID, articles[1].ID)
	})

	t.Run("author filter", func(t *testing.T) {
		articles, err := env.articleService.List(ctx, "", "alice")
		require.NoError(t, err)
		assert.Len(t, articles, 2)
	})

	t.Run("filters combine", func(t *testing.T) {
		articles, err := env.articleService.List(ctx, "go", "bob")
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, newer.ID, articles[0].ID)
	})

	t.Run("no filters lists everything", func(t *testing.T) {
		articles, err := env.articleService.List(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, articles, 3)
	})
}

func TestArticleService_Update(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	article := env.mustCreateArticle(t, alice, "Original", "go")

	t.Run("only the author may update", func(t *testing.T) {
		title := "Hijacked"
		_, err := env.articleService.Update(ctx, bob, article.ID, models.ArticlePatch{Title: &title})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("partial patch changes only provided fields", func(t *testing.T) {
		title := "Renamed"
		updated, err := env.articleService.Update(ctx, alice, article.ID, models.ArticlePatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, article.Content, updated.Content)
		assert.Equal(t, article.Tags, updated.Tags)
	})

	t.Run("updated_at refreshes even on an empty patch", func(t *testing.T) {
		before, err := env.articleService.GetByID(ctx, article.ID)
		require.NoError(t, err)

		updated, err := env.articleService.Update(ctx, alice, article.ID, models.ArticlePatch{})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
		assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	})

	t.Run("unknown article is not found", func(t *testing.T) {
		_, err := env.articleService.Update(ctx, alice, "missing", models.ArticlePatch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestArticleService_Delete(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	article := env.mustCreateArticle(t, alice, "Doomed")

	_, err := env.commentService.Create(ctx, bob, article.ID, "nice post")
	require.NoError(t, err)
	require.NoError(t, env.likeService.Like(ctx, bob, article.ID))

	t.Run("only the author may delete", func(t *testing.T) {
		err := env.articleService.Delete(ctx, bob, article.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("delete cascades to comments and likes", func(t *testing.T) {
		require.NoError(t, env.articleService.Delete(ctx, alice, article.ID))

		_, err := env.articleService.GetByID(ctx, article.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		comments, err := env.commentService.ListByArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)

		liked, err := env.likeService.IsLiked(ctx, bob, article.ID)
		require.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("deleting twice is not found", func(t *testing.T) {
		err := env.articleService.Delete(ctx, alice, article.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
