package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anyrite/pixelblog-be/internal/auth"
	"github.com/anyrite/pixelblog-be/internal/models"
	"github.com/anyrite/pixelblog-be/internal/store"
)

// Profile bundles a user with their articles for the public profile view.
type Profile struct {
	User     models.User      `json:"user"`
	Articles []models.Article `json:"articles"`
}

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetProfile(ctx context.Context, username string) (Profile, error)
}

// UserService provides business logic for registration, login and profiles.
type UserService struct {
	users    store.UserStore
	articles store.ArticleStore
	hasher   *auth.Hasher
}

// NewUserService creates a new UserService.
func NewUserService(users store.UserStore, articles store.ArticleStore, hasher *auth.Hasher) *UserService {
	return &UserService{users: users, articles: articles, hasher: hasher}
}

// Register creates a new account. Username and email must both be unused;
// either one taken fails with ErrConflict. The returned user never carries
// the password hash.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	if username == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("username, email and password are required: %w", ErrInvalid)
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, fmt.Errorf("username or email already registered: %w", ErrConflict)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		// The unique indexes close the check-then-insert race.
		if errors.Is(err, store.ErrDuplicate) {
			return models.User{}, fmt.Errorf("username or email already registered: %w", ErrConflict)
		}
		return models.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a user's credentials. Unknown email and wrong
// password produce the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
		}
		return models.User{}, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return models.User{}, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}

	user.PasswordHash = ""
	return user, nil
}

// GetByID retrieves a single user by their id.
func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// GetProfile returns a user's public profile with their articles, newest
// first.
func (s *UserService) GetProfile(ctx context.Context, username string) (Profile, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Profile{}, fmt.Errorf("user %s: %w", username, ErrNotFound)
		}
		return Profile{}, err
	}
	user.PasswordHash = ""

	articles, err := s.articles.List(ctx, store.ArticleFilter{AuthorUsername: username})
	if err != nil {
		return Profile{}, err
	}
	return Profile{User: user, Articles: articles}, nil
}
