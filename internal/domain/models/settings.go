package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SettingTypeText    = "text"
	SettingTypeImage   = "image"
	SettingTypeJSON    = "json"
	SettingTypeBoolean = "boolean"
)

// SiteSetting is a key/value pair; interpretation of Value depends on Type.
type SiteSetting struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	Type      string    `db:"type" json:"type"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func ValidSettingType(settingType string) bool {
	switch settingType {
	case SettingTypeText, SettingTypeImage, SettingTypeJSON, SettingTypeBoolean:
		return true
	}
	return false
}

type HeroSlide struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	Title     string    `db:"title" json:"title,omitempty"`
	Subtitle  string    `db:"subtitle" json:"subtitle,omitempty"`
	CTAText   string    `db:"cta_text" json:"cta_text,omitempty"`
	CTALink   string    `db:"cta_link" json:"cta_link,omitempty"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
