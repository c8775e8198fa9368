package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mayaverdell/threadline-backend/pkg/db/models"
	pkgerrors "github.com/mayaverdell/threadline-backend/pkg/errors"
	"gorm.io/gorm"
)

// Adjuster mutates variant stock inside a caller-owned transaction.
type Adjuster interface {
	Adjust(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size, color string, delta int) error
}

type service struct{}

// NewService builds the inventory adjuster.
func NewService() Adjuster {
	return &service{}
}

// Adjust applies a signed quantity delta to the (product, size, color) variant,
// creating the bucket on first credit, and refreshes the product's denormalized
// in_stock flag. Must run inside the caller's transaction so the stock write
// and the flag stay consistent.
func (s *service) Adjust(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size, color string, delta int) error {
	if size == "" || color == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "size and color are required")
	}

	var variant models.ProductVariant
	err := tx.WithContext(ctx).
		First(&variant, "product_id = ? AND size = ? AND color = ?", productID, size, color).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if delta < 0 {
			return pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock")
		}
		variant = models.ProductVariant{
			ID:        uuid.New(),
			ProductID: productID,
			Size:      size,
			Color:     color,
			Quantity:  delta,
		}
		if err := tx.WithContext(ctx).Create(&variant).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create variant")
		}
	case err != nil:
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load variant")
	default:
		// The delta is applied as a SQL expression so interleaved credits on
		// the same variant accumulate instead of clobbering each other. The
		// WHERE guard makes an overdraw match zero rows.
		res := tx.WithContext(ctx).
			Model(&models.ProductVariant{}).
			Where("id = ? AND quantity + ? >= 0", variant.ID, delta).
			Update("quantity", gorm.Expr("quantity + ?", delta))
		if res.Error != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, res.Error, "update variant quantity")
		}
		if res.RowsAffected == 0 {
			return pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock")
		}
	}

	return s.refreshStockFlag(ctx, tx, productID)
}

// refreshStockFlag recomputes in_stock from the variant quantities.
func (s *service) refreshStockFlag(ctx context.Context, tx *gorm.DB, productID uuid.UUID) error {
	var available int64
	err := tx.WithContext(ctx).
		Model(&models.ProductVariant{}).
		Where("product_id = ? AND quantity > 0", productID).
		Count(&available).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count variants")
	}

	err = tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("in_stock", available > 0).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update stock flag")
	}
	return nil
}
