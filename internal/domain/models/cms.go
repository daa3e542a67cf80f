package models

import (
	"time"

	"github.com/google/uuid"
)

// CMS blocks driving navigation and the landing page. The public site never
// renders an empty menu: when no active rows exist the compiled-in defaults
// are served instead.

type NavigationItem struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Label        string    `db:"label" json:"label"`
	Href         string    `db:"href" json:"href"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type LandingSection struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SectionKey   string    `db:"section_key" json:"section_key"`
	Title        string    `db:"title" json:"title,omitempty"`
	Body         string    `db:"body" json:"body,omitempty"`
	ImageURL     string    `db:"image_url" json:"image_url,omitempty"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
