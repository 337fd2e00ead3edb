package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anyrite/pixelblog-be/internal/auth"
	"github.com/anyrite/pixelblog-be/internal/services"
)

// CommentHandler handles HTTP requests for article comments.
type CommentHandler struct {
	service services.CommentServiceProvider
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service services.CommentServiceProvider) *CommentHandler {
	return &CommentHandler{service: service}
}

// CommentPayload defines the structure for comment creation requests.
type CommentPayload struct {
	Content string `json:"content"`
}

// List returns an article's comments, newest first.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "id")
	comments, err := h.service.ListByArticle(r.Context(), articleID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// Create adds a comment to an article as the authenticated user.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	articleID := chi.URLParam(r, "id")
	var payload CommentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	comment, err := h.service.Create(r.Context(), actor, articleID, payload.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
