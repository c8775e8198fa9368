package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is the canonical catalog listing. The category columns hold the raw
// references stored by the catalog importer; they are resolved to category
// names at read time. InStock is denormalized from the variant quantities and
// kept consistent by every inventory writer.
type Product struct {
	ID               uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Name             string           `gorm:"column:name;not null"`
	Description      *string          `gorm:"column:description"`
	Price            decimal.Decimal  `gorm:"column:price;type:numeric(12,2);not null"`
	Tags             pq.StringArray   `gorm:"column:tags;type:text[]"`
	CategoryID       *string          `gorm:"column:category_id"`
	SubcategoryID    *string          `gorm:"column:subcategory_id"`
	SubsubcategoryID *string          `gorm:"column:subsubcategory_id"`
	InStock          bool             `gorm:"column:in_stock;not null;default:false"`
	Variants         []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
