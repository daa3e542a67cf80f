package models

import (
	"time"

	"github.com/google/uuid"
)

type Page struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Slug            string    `db:"slug" json:"slug"`
	Title           string    `db:"title" json:"title"`
	Content         string    `db:"content" json:"content"`
	MetaTitle       string    `db:"meta_title" json:"meta_title,omitempty"`
	MetaDescription string    `db:"meta_description" json:"meta_description,omitempty"`
	Published       bool      `db:"published" json:"published"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
