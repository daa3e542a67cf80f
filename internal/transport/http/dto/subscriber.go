package dto

type SubscribeRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

type UpdateSubscriberStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
