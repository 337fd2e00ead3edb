package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/anyrite/pixelblog-be/internal/auth"
	"github.com/anyrite/pixelblog-be/internal/models"
	"github.com/anyrite/pixelblog-be/internal/services"
)

// ArticleHandler handles HTTP requests for articles.
type ArticleHandler struct {
	service services.ArticleServiceProvider
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(service services.ArticleServiceProvider) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List returns articles newest first, filterable by ?tag= and ?author=.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	author := r.URL.Query().Get("author")

	articles, err := h.service.List(r.Context(), tag, author)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list articles")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// Get returns a single article by id.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	article, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// Create publishes a new article authored by the authenticated user.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var input services.ArticleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	article, err := h.service.Create(r.Context(), actor, input)
	if err != nil {
		log.Error().Err(err).Str("user_id", actor.ID).Msg("Failed to create article")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, article)
}

// Update applies a partial patch to the authenticated user's own article.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "id")
	var patch models.ArticlePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	article, err := h.service.Update(r.Context(), actor, id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// Delete removes the authenticated user's own article with its comments and
// likes.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Article deleted"})
}
