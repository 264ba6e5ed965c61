package models

import "time"

// Attachment is a file attached to a media item
type Attachment struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Size        int64  `json:"size"`
}

// Media represents a blog/article entry from the database.
// Content is opaque HTML produced by the admin editor.
type Media struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Summary       *string      `json:"summary"`
	Content       string       `json:"content"`
	Published     bool         `json:"published"`
	FeaturedImage *string      `json:"featured_image"`
	Attachments   []Attachment `json:"attachments"`
	PublishedAt   *time.Time   `json:"published_at"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
