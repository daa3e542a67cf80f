package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

type Subscriber struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name,omitempty"`
	Status    string    `db:"status" json:"status"`
	Source    string    `db:"source" json:"source,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func ValidSubscriberStatus(status string) bool {
	return status == SubscriberStatusActive || status == SubscriberStatusUnsubscribed
}
