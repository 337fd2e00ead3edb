package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/anyrite/pixelblog-be/internal/auth"
	"github.com/anyrite/pixelblog-be/internal/models"
	"github.com/anyrite/pixelblog-be/internal/store/memory"
)

// testEnv wires the services onto in-memory stores.
type testEnv struct {
	users    *memory.UserStore
	articles *memory.ArticleStore
	comments *memory.CommentStore
	likes    *memory.LikeStore

	userService    *UserService
	articleService *ArticleService
	commentService *CommentService
	likeService    *LikeService
}

func newTestEnv() *testEnv {
	users := memory.NewUserStore()
	articles := memory.NewArticleStore()
	comments := memory.NewCommentStore()
	likes := memory.NewLikeStore()

	// MinCost keeps the bcrypt work factor out of the test runtime.
	hasher := auth.NewHasher(bcrypt.MinCost)

	return &testEnv{
		users:    users,
		articles: articles,
		comments: comments,
		likes:    likes,

		userService:    NewUserService(users, articles, hasher),
		articleService: NewArticleService(articles, comments, likes),
		commentService: NewCommentService(comments, articles),
		likeService:    NewLikeService(likes, articles),
	}
}

func (e *testEnv) mustRegister(t *testing.T, username string) models.User {
	t.Helper()
	user, err := e.userService.Register(context.Background(), username, username+"@example.com", "hunter22")
	require.NoError(t, err)
	return user
}

func (e *testEnv) mustCreateArticle(t *testing.T, actor models.User, title string, tags ...string) models.Article {
	t.Helper()
	article, err := e.articleService.Create(context.Background(), actor, ArticleInput{
		Title:   title,
		Content: "content of " + title,
		Tags:    tags,
	})
	require.NoError(t, err)
	return article
}
