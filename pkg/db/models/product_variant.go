package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductVariant tracks stock for one (size, color) combination of a product.
type ProductVariant struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_variant_product_size_color"`
	Size      string    `gorm:"column:size;not null;uniqueIndex:idx_variant_product_size_color"`
	Color     string    `gorm:"column:color;not null;uniqueIndex:idx_variant_product_size_color"`
	Quantity  int       `gorm:"column:quantity;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
