package dto

import (
	"time"

	"nordlys_studio/internal/domain/models"
)

type CreateBlogPostRequest struct {
	Title      string   `json:"title" validate:"required"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content" validate:"required"`
	CoverImage string   `json:"cover_image"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Author     string   `json:"author"`
	Published  bool     `json:"published"`
	Featured   bool     `json:"featured"`
}

type UpdateBlogPostRequest struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	CoverImage  *string    `json:"cover_image"`
	Category    *string    `json:"category"`
	Tags        []string   `json:"tags"`
	Author      *string    `json:"author"`
	Published   *bool      `json:"published"`
	Featured    *bool      `json:"featured"`
	PublishedAt *time.Time `json:"published_at"`
}

type BlogPostListResponse struct {
	Posts      []models.BlogPost `json:"posts"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}
