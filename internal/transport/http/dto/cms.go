package dto

import "nordlys_studio/internal/domain/models"

// Source says whether the items came from the CMS tables or from the
// compiled-in fallback used when the CMS set is empty.
type NavigationResponse struct {
	Source string                  `json:"source"`
	Items  []models.NavigationItem `json:"items"`
}

type LandingResponse struct {
	Source   string                  `json:"source"`
	Sections []models.LandingSection `json:"sections"`
}

type CreateNavigationItemRequest struct {
	Label        string `json:"label" validate:"required"`
	Href         string `json:"href" validate:"required"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type UpdateNavigationItemRequest struct {
	Label        *string `json:"label"`
	Href         *string `json:"href"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type CreateLandingSectionRequest struct {
	SectionKey   string `json:"section_key" validate:"required"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type UpdateLandingSectionRequest struct {
	SectionKey   *string `json:"section_key"`
	Title        *string `json:"title"`
	Body         *string `json:"body"`
	ImageURL     *string `json:"image_url"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}
