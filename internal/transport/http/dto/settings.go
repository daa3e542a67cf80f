package dto

type UpsertSettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
	Type  string `json:"type" validate:"required"`
}

type CreateHeroSlideRequest struct {
	ImageURL  string `json:"image_url" validate:"required"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	CTAText   string `json:"cta_text"`
	CTALink   string `json:"cta_link"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

type UpdateHeroSlideRequest struct {
	ImageURL  *string `json:"image_url"`
	Title     *string `json:"title"`
	Subtitle  *string `json:"subtitle"`
	CTAText   *string `json:"cta_text"`
	CTALink   *string `json:"cta_link"`
	SortOrder *int    `json:"sort_order"`
	Active    *bool   `json:"active"`
}
