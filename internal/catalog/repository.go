package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mayaverdell/threadline-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines the persistence surface the catalog service consumes.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListByCategoryName(ctx context.Context, name string) ([]models.Product, error)
	SearchByName(ctx context.Context, query string, limit int) ([]models.Product, error)
	ListNewest(ctx context.Context, limit int) ([]models.Product, error)
	ListAllJoined(ctx context.Context) ([]JoinedProduct, error)
	ListStockFlags(ctx context.Context) ([]bool, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
}

// JoinedProduct is one list-all row with category names resolved.
type JoinedProduct struct {
	Product            models.Product
	CategoryName       *string
	SubcategoryName    *string
	SubsubcategoryName *string
}

type joinedRow struct {
	ID                 uuid.UUID
	Name               string
	Description        *string
	Price              string
	CategoryID         *string
	SubcategoryID      *string
	SubsubcategoryID   *string
	InStock            bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CategoryName       *string
	SubcategoryName    *string
	SubsubcategoryName *string
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByID loads the product with its variants.
func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListByCategoryName filters by resolved category name, accepting the raw
// stored reference as a legacy fallback, newest first.
func (r *repository) ListByCategoryName(ctx context.Context, name string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("categories.name = ? OR products.category_id = ?", name, name).
		Order("products.created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SearchByName does a case-insensitive substring match, newest first.
func (r *repository) SearchByName(ctx context.Context, query string, limit int) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListNewest returns the most recently created products.
func (r *repository) ListNewest(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListAllJoined returns every product with the three category levels resolved
// to names, newest first.
func (r *repository) ListAllJoined(ctx context.Context) ([]JoinedProduct, error) {
	var rows []joinedRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select(`products.id, products.name, products.description, products.price,
			products.category_id, products.subcategory_id, products.subsubcategory_id,
			products.in_stock, products.created_at, products.updated_at,
			c1.name AS category_name, c2.name AS subcategory_name, c3.name AS subsubcategory_name`).
		Joins("LEFT JOIN categories c1 ON c1.id = products.category_id").
		Joins("LEFT JOIN categories c2 ON c2.id = products.subcategory_id").
		Joins("LEFT JOIN categories c3 ON c3.id = products.subsubcategory_id").
		Order("products.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	joined := make([]JoinedProduct, 0, len(rows))
	for _, row := range rows {
		joined = append(joined, row.toJoinedProduct())
	}
	return joined, nil
}

// ListStockFlags plucks the denormalized in_stock flag for every product.
func (r *repository) ListStockFlags(ctx context.Context) ([]bool, error) {
	var flags []bool
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Pluck("in_stock", &flags).Error
	if err != nil {
		return nil, err
	}
	return flags, nil
}

// UpdateFields applies a partial overwrite-merge onto the product row.
func (r *repository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (row joinedRow) toJoinedProduct() JoinedProduct {
	product := models.Product{
		ID:               row.ID,
		Name:             row.Name,
		Description:      row.Description,
		CategoryID:       row.CategoryID,
		SubcategoryID:    row.SubcategoryID,
		SubsubcategoryID: row.SubsubcategoryID,
		InStock:          row.InStock,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if price, err := parsePrice(row.Price); err == nil {
		product.Price = price
	}
	return JoinedProduct{
		Product:            product,
		CategoryName:       row.CategoryName,
		SubcategoryName:    row.SubcategoryName,
		SubsubcategoryName: row.SubsubcategoryName,
	}
}
