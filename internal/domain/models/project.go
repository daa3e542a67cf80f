package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryWeddingPhoto = "wedding-photo"
	CategoryWeddingVideo = "wedding-video"
)

// Project is a portfolio entry on the public site. Media and client
// galleries belong to it and are removed when the project is deleted.
type Project struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Slug       string     `db:"slug" json:"slug"`
	Category   string     `db:"category" json:"category"`
	CoverImage string     `db:"cover_image" json:"cover_image,omitempty"`
	VideoURL   string     `db:"video_url" json:"video_url,omitempty"`
	Date       *time.Time `db:"date" json:"date,omitempty"`
	Location   string     `db:"location" json:"location,omitempty"`
	Featured   bool       `db:"featured" json:"featured"`
	Published  bool       `db:"published" json:"published"`
	SortOrder  int        `db:"sort_order" json:"sort_order"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

func ValidProjectCategory(category string) bool {
	return category == CategoryWeddingPhoto || category == CategoryWeddingVideo
}
