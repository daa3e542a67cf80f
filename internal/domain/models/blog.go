package models

import (
	"time"

	"github.com/google/uuid"
)

type BlogPost struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Slug        string     `db:"slug" json:"slug"`
	Excerpt     string     `db:"excerpt" json:"excerpt,omitempty"`
	Content     string     `db:"content" json:"content"`
	CoverImage  string     `db:"cover_image" json:"cover_image,omitempty"`
	Category    string     `db:"category" json:"category,omitempty"`
	Tags        []string   `db:"tags" json:"tags,omitempty"`
	Author      string     `db:"author" json:"author,omitempty"`
	Published   bool       `db:"published" json:"published"`
	Featured    bool       `db:"featured" json:"featured"`
	PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
