package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// Contact is an inquiry submitted through the public contact form.
// Status starts at "new" and is only changed by admin action.
type Contact struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Email     string     `db:"email" json:"email"`
	Phone     string     `db:"phone" json:"phone,omitempty"`
	EventDate *time.Time `db:"event_date" json:"event_date,omitempty"`
	EventType string     `db:"event_type" json:"event_type,omitempty"`
	Message   string     `db:"message" json:"message"`
	Status    string     `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

func ValidContactStatus(status string) bool {
	switch status {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}
