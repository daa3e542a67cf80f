package models

import (
	"time"

	"github.com/google/uuid"
)

// ClientGallery is a password protected, optionally expiring gallery tied to
// a project. ViewCount only ever increases.
type ClientGallery struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	ProjectID       uuid.UUID  `db:"project_id" json:"project_id"`
	Slug            string     `db:"slug" json:"slug"`
	PasswordHash    []byte     `db:"password_hash" json:"-"`
	ClientName      string     `db:"client_name" json:"client_name"`
	ClientEmail     string     `db:"client_email" json:"client_email,omitempty"`
	ExpiresAt       *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	DownloadEnabled bool       `db:"download_enabled" json:"download_enabled"`
	ViewCount       int        `db:"view_count" json:"view_count"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

func (g ClientGallery) Expired(now time.Time) bool {
	return g.ExpiresAt != nil && now.After(*g.ExpiresAt)
}
