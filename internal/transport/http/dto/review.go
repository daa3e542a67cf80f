package dto

import "time"

type CreateReviewRequest struct {
	Name      string     `json:"name" validate:"required"`
	EventType string     `json:"event_type"`
	EventDate *time.Time `json:"event_date"`
	Rating    int        `json:"rating" validate:"required,min=1,max=5"`
	Content   string     `json:"content" validate:"required"`
	Featured  bool       `json:"featured"`
	Published bool       `json:"published"`
}

type UpdateReviewRequest struct {
	Name      *string    `json:"name"`
	EventType *string    `json:"event_type"`
	EventDate *time.Time `json:"event_date"`
	Rating    *int       `json:"rating" validate:"omitempty,min=1,max=5"`
	Content   *string    `json:"content"`
	Featured  *bool      `json:"featured"`
	Published *bool      `json:"published"`
}
