package dto

import (
	"time"

	"nordlys_studio/internal/domain/models"

	"github.com/google/uuid"
)

type CreateGalleryRequest struct {
	ProjectID       uuid.UUID  `json:"project_id" validate:"required"`
	Slug            string     `json:"slug"`
	Password        string     `json:"password" validate:"required,min=6"`
	ClientName      string     `json:"client_name" validate:"required"`
	ClientEmail     string     `json:"client_email" validate:"omitempty,email"`
	ExpiresAt       *time.Time `json:"expires_at"`
	DownloadEnabled bool       `json:"download_enabled"`
}

type UpdateGalleryRequest struct {
	ProjectID       *uuid.UUID `json:"project_id"`
	Slug            *string    `json:"slug"`
	Password        *string    `json:"password" validate:"omitempty,min=6"`
	ClientName      *string    `json:"client_name"`
	ClientEmail     *string    `json:"client_email" validate:"omitempty,email"`
	ExpiresAt       *time.Time `json:"expires_at"`
	DownloadEnabled *bool      `json:"download_enabled"`
}

type GalleryAccessRequest struct {
	Password string `json:"password" validate:"required"`
}

// GalleryAccessResponse is what a client sees after unlocking a gallery.
// The password hash never leaves the service layer.
type GalleryAccessResponse struct {
	Slug            string         `json:"slug"`
	ClientName      string         `json:"client_name"`
	DownloadEnabled bool           `json:"download_enabled"`
	ExpiresAt       *time.Time     `json:"expires_at,omitempty"`
	Media           []models.Media `json:"media"`
}
