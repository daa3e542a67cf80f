package dto

import (
	"mime/multipart"

	"github.com/google/uuid"
)

// UploadMediaRequest carries the multipart form fields of an admin upload.
// The file itself travels alongside as multipart.FileHeader.
type UploadMediaRequest struct {
	ProjectID *uuid.UUID `form:"project_id"`
	MediaType string     `form:"media_type" validate:"required"`
	Title     string     `form:"title"`
	Alt       string     `form:"alt"`
	SortOrder int        `form:"sort_order"`
	File      *multipart.FileHeader
}

type UpdateMediaRequest struct {
	ProjectID    *uuid.UUID `json:"project_id"`
	MediaType    *string    `json:"media_type"`
	URL          *string    `json:"url"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	Title        *string    `json:"title"`
	Alt          *string    `json:"alt"`
	SortOrder    *int       `json:"sort_order"`
}
