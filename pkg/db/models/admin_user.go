package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser grants the admin capability by row presence.
type AdminUser struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
