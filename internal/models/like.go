package models

import "time"

// Like marks that a user liked an article. At most one Like exists per
// (article, user) pair.
type Like struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
