package models

import "time"

// Article is a published post. AuthorUsername is a snapshot taken at creation
// time and does not track later renames. LikesCount and CommentsCount are
// denormalized and maintained by atomic increments on each mutation.
type Article struct {
	ID             string    `json:"id"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Tags           []string  `json:"tags"`
	CoverImage     string    `json:"cover_image"`
	LikesCount     int       `json:"likes_count"`
	CommentsCount  int       `json:"comments_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ArticlePatch carries a partial article update. Nil fields are left untouched.
type ArticlePatch struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	CoverImage *string   `json:"cover_image"`
}
