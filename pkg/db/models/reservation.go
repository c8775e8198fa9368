package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultReservationColor is the sentinel used when a reservation was taken
// without an explicit color.
const DefaultReservationColor = "Standard"

// Reservation is a temporary hold on inventory for an in-progress cart.
// A reservation row exists only while the hold is active: releasing it or
// sweeping it after expiry credits the quantity back to the variant and
// removes the row in the same transaction, so the two terminal paths are
// mutually exclusive.
type Reservation struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Size      string    `gorm:"column:size;not null"`
	Color     *string   `gorm:"column:color"`
	Quantity  int       `gorm:"column:quantity;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// VariantColor returns the stored color or the sentinel default.
func (r Reservation) VariantColor() string {
	if r.Color != nil && *r.Color != "" {
		return *r.Color
	}
	return DefaultReservationColor
}
