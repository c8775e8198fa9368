package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is read-only from this service: rows are written by the checkout
// pipeline and exposed here as the caller's history. Payload is the opaque
// order document produced at checkout time.
type Order struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Payload   []byte    `gorm:"column:payload;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
