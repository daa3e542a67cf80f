package dto

import "time"

type CreateBookingRequest struct {
	Date        time.Time `json:"date" validate:"required"`
	ClientName  string    `json:"client_name" validate:"required"`
	ClientEmail string    `json:"client_email" validate:"required,email"`
	ClientPhone string    `json:"client_phone"`
	EventType   string    `json:"event_type"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
}

type UpdateBookingRequest struct {
	Date        *time.Time `json:"date"`
	ClientName  *string    `json:"client_name"`
	ClientEmail *string    `json:"client_email" validate:"omitempty,email"`
	ClientPhone *string    `json:"client_phone"`
	EventType   *string    `json:"event_type"`
	Location    *string    `json:"location"`
	Notes       *string    `json:"notes"`
	Status      *string    `json:"status"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateBlockedDateRequest struct {
	Date   time.Time `json:"date" validate:"required"`
	Reason string    `json:"reason"`
}
