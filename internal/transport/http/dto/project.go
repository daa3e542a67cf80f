package dto

import "time"

type CreateProjectRequest struct {
	Title      string     `json:"title" validate:"required"`
	Slug       string     `json:"slug" validate:"required"`
	Category   string     `json:"category" validate:"required"`
	CoverImage string     `json:"cover_image"`
	VideoURL   string     `json:"video_url"`
	Date       *time.Time `json:"date"`
	Location   string     `json:"location"`
	Featured   bool       `json:"featured"`
	Published  bool       `json:"published"`
	SortOrder  int        `json:"sort_order"`
}

type UpdateProjectRequest struct {
	Title      *string    `json:"title"`
	Slug       *string    `json:"slug"`
	Category   *string    `json:"category"`
	CoverImage *string    `json:"cover_image"`
	VideoURL   *string    `json:"video_url"`
	Date       *time.Time `json:"date"`
	Location   *string    `json:"location"`
	Featured   *bool      `json:"featured"`
	Published  *bool      `json:"published"`
	SortOrder  *int       `json:"sort_order"`
}
