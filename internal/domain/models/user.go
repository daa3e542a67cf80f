package models

import (
	"time"

	"github.com/google/uuid"
)

type AdminUser struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	PassHash        []byte    `db:"pass_hash" json:"-"`
	FirstName       string    `db:"first_name" json:"first_name,omitempty"`
	LastName        string    `db:"last_name" json:"last_name,omitempty"`
	ProfileImageURL string    `db:"profile_image_url" json:"profile_image_url,omitempty"`
	IsAdmin         bool      `db:"is_admin" json:"is_admin"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type TokenPair struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}
