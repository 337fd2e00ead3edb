package models

import "time"

// Comment belongs to an article. Username is a snapshot of the author's name
// at creation time. Comments are only removed as part of article deletion.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
