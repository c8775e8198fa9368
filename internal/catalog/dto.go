package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/mayaverdell/threadline-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductView is the verbatim detail payload for a single product.
type ProductView struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Description      *string         `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Tags             []string        `json:"tags"`
	CategoryID       *string         `json:"category_id"`
	SubcategoryID    *string         `json:"subcategory_id"`
	SubsubcategoryID *string         `json:"subsubcategory_id"`
	InStock          bool            `json:"in_stock"`
	Variants         []VariantView   `json:"variants,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// VariantView is one size/color quantity bucket of a product.
type VariantView struct {
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// ListItemView is one row of the storefront listing. The category levels keep
// their historical shapes: a plain name, a zero-or-one-element list, and a
// nullable name.
type ListItemView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category"`
	Subcategory    []string        `json:"subcategory"`
	Subsubcategory *string         `json:"subsubcategory"`
	InStock        bool            `json:"in_stock"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewProductView maps a stored product onto its detail payload.
func NewProductView(product models.Product) ProductView {
	view := ProductView{
		ID:               product.ID,
		Name:             product.Name,
		Description:      product.Description,
		Price:            product.Price,
		Tags:             []string(product.Tags),
		CategoryID:       product.CategoryID,
		SubcategoryID:    product.SubcategoryID,
		SubsubcategoryID: product.SubsubcategoryID,
		InStock:          product.InStock,
		CreatedAt:        product.CreatedAt,
		UpdatedAt:        product.UpdatedAt,
	}
	for _, variant := range product.Variants {
		view.Variants = append(view.Variants, VariantView{
			Size:     variant.Size,
			Color:    variant.Color,
			Quantity: variant.Quantity,
		})
	}
	return view
}

// NewProductViews maps a slice of stored products.
func NewProductViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, NewProductView(product))
	}
	return views
}

// NewListItemView maps a joined row onto a listing row. A missing category
// join falls back to the raw stored reference; the lower levels fall back to
// empty and null respectively.
func NewListItemView(row JoinedProduct) ListItemView {
	item := ListItemView{
		ID:             row.Product.ID,
		Name:           row.Product.Name,
		Description:    row.Product.Description,
		Price:          row.Product.Price,
		Subcategory:    []string{},
		Subsubcategory: row.SubsubcategoryName,
		InStock:        row.Product.InStock,
		CreatedAt:      row.Product.CreatedAt,
	}
	switch {
	case row.CategoryName != nil:
		item.Category = *row.CategoryName
	case row.Product.CategoryID != nil:
		item.Category = *row.Product.CategoryID
	}
	if row.SubcategoryName != nil {
		item.Subcategory = append(item.Subcategory, *row.SubcategoryName)
	}
	return item
}

func parsePrice(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
