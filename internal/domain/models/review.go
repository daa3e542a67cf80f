package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	EventType string     `db:"event_type" json:"event_type,omitempty"`
	EventDate *time.Time `db:"event_date" json:"event_date,omitempty"`
	Rating    int        `db:"rating" json:"rating"`
	Content   string     `db:"content" json:"content"`
	Featured  bool       `db:"featured" json:"featured"`
	Published bool       `db:"published" json:"published"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}
