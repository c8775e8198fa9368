package admins

import (
	"context"

	"github.com/google/uuid"
	"github.com/mayaverdell/threadline-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Capability is the typed result of an allow-list check. Handlers branch on
// the capability value rather than on raw row presence.
type Capability string

const (
	CapabilityNone  Capability = "none"
	CapabilityAdmin Capability = "admin"
)

// IsAdmin reports whether the capability grants catalog mutation and stats.
func (c Capability) IsAdmin() bool {
	return c == CapabilityAdmin
}

// Checker resolves the admin capability for a user.
type Checker interface {
	Check(ctx context.Context, userID uuid.UUID) (Capability, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an allow-list checker bound to the provided DB.
func NewRepository(db *gorm.DB) Checker {
	return &repository{db: db}
}

func (r *repository) Check(ctx context.Context, userID uuid.UUID) (Capability, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return CapabilityNone, err
	}
	if count == 0 {
		return CapabilityNone, nil
	}
	return CapabilityAdmin, nil
}
