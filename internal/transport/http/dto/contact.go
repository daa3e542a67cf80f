package dto

import "time"

type CreateContactRequest struct {
	Name      string     `json:"name" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Phone     string     `json:"phone"`
	EventDate *time.Time `json:"event_date"`
	EventType string     `json:"event_type"`
	Message   string     `json:"message" validate:"required"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
