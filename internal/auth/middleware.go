package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/anyrite/pixelblog-be/internal/models"
	"github.com/anyrite/pixelblog-be/internal/store"
)

type contextKey string

const currentUserKey = contextKey("currentUser")

// CurrentUser returns the authenticated user placed in the context by
// Middleware, or false when the request was not authenticated.
func CurrentUser(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(currentUserKey).(models.User)
	return user, ok
}

// Middleware protects routes with bearer-token authentication. It validates
// the token, then resolves the subject against the user store so a deleted
// account with an outstanding token is rejected, and passes the resolved
// user down via the request context.
func Middleware(tokens *TokenService, users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenStr == "" {
				http.Error(w, "Missing auth token", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Validate(tokenStr)
			if err != nil {
				if err == ErrTokenExpired {
					http.Error(w, "Token expired", http.StatusUnauthorized)
					return
				}
				http.Error(w, "Invalid auth token", http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				log.Warn().Err(err).Str("user_id", userID).Msg("Token subject not found")
				http.Error(w, "User not found", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
