package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type Media struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	ProjectID    *uuid.UUID `db:"project_id" json:"project_id,omitempty"`
	MediaType    string     `db:"media_type" json:"media_type"`
	URL          string     `db:"url" json:"url"`
	ThumbnailURL string     `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	Title        string     `db:"title" json:"title,omitempty"`
	Alt          string     `db:"alt" json:"alt,omitempty"`
	SortOrder    int        `db:"sort_order" json:"sort_order"`
	FileSize     int64      `db:"file_size" json:"file_size,omitempty"`
	MimeType     string     `db:"mime_type" json:"mime_type,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

func ValidMediaType(mediaType string) bool {
	return mediaType == MediaTypeImage || mediaType == MediaTypeVideo
}
