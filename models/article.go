package models

import (
	"time"

	"gorm.io/datatypes"
)

// Article represents a published educational article. Content is markdown.
type Article struct {
	ID          string                      `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;default:gen_random_uuid();not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Content     string                      `json:"content" db:"content" gorm:"type:text;not null"`
	ImageURL    string                      `json:"imageUrl" db:"image_url" gorm:"type:text;not null"`
	Category    string                      `json:"category" db:"category" gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `json:"tags" db:"tags" gorm:"not null"`
	ReadTime    string                      `json:"readTime" db:"read_time" gorm:"type:text;not null"`
	PublishedAt time.Time                   `json:"publishedAt" db:"published_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	CreatedAt   time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// InsertArticle is the caller-supplied shape for creating an article.
// Identifier and both timestamps are assigned by the storage backend.
type InsertArticle struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"imageUrl"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ReadTime    string   `json:"readTime"`
}
