package dto

type CreatePageRequest struct {
	Slug            string `json:"slug" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	Published       bool   `json:"published"`
}

type UpdatePageRequest struct {
	Slug            *string `json:"slug"`
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	Published       *bool   `json:"published"`
}
