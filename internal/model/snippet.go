package model

import "time"

// Snippet is a titled piece of user text. Notes and saved texts share this
// shape and differ only in which table they live in.
type Snippet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateSnippetRequest is used for creating a note or a saved text
type CreateSnippetRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
