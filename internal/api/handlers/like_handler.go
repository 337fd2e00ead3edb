package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anyrite/pixelblog-be/internal/auth"
	"github.com/anyrite/pixelblog-be/internal/services"
)

// LikeHandler handles HTTP requests for article likes.
type LikeHandler struct {
	service services.LikeServiceProvider
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(service services.LikeServiceProvider) *LikeHandler {
	return &LikeHandler{service: service}
}

// Like records the authenticated user's like on an article. Liking twice is
// a no-op success.
func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	articleID := chi.URLParam(r, "id")
	if err := h.service.Like(r.Context(), actor, articleID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Liked"})
}

// Unlike removes the authenticated user's like from an article.
func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	articleID := chi.URLParam(r, "id")
	if err := h.service.Unlike(r.Context(), actor, articleID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Unliked"})
}

// IsLiked reports whether the authenticated user has liked an article.
func (h *LikeHandler) IsLiked(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	articleID := chi.URLParam(r, "id")
	liked, err := h.service.IsLiked(r.Context(), actor, articleID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_liked": liked})
}
