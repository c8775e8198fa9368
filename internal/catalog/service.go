package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	pkgerrors "github.com/mayaverdell/threadline-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultSearchLimit caps search and listing results when the caller does not
// ask for a specific page size.
const DefaultSearchLimit = 10

// UpdateProductInput carries the fields of a partial product edit. Nil fields
// are left untouched.
type UpdateProductInput struct {
	Name             *string
	Description      *string
	Price            *decimal.Decimal
	Tags             *[]string
	CategoryID       *string
	SubcategoryID    *string
	SubsubcategoryID *string
	InStock          *bool
}

// Service exposes the catalog read and admin edit operations.
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListByCategory(ctx context.Context, name string) ([]ProductView, error)
	Search(ctx context.Context, query string, limit int) ([]ProductView, error)
	ListAll(ctx context.Context) ([]ListItemView, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductView, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds the catalog service on top of a repository.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	view := NewProductView(*product)
	return &view, nil
}

func (s *service) ListByCategory(ctx context.Context, name string) ([]ProductView, error) {
	products, err := s.repo.ListByCategoryName(ctx, name)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products by category")
	}
	return NewProductViews(products), nil
}

// Search matches products by name substring. An empty query degrades to a
// newest-first listing at the same limit.
func (s *service) Search(ctx context.Context, query string, limit int) ([]ProductView, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var (
		products []ProductView
		err      error
	)
	if query == "" {
		var newest []ProductView
		newest, err = s.listNewest(ctx, limit)
		products = newest
	} else {
		var matched []ProductView
		matched, err = s.searchByName(ctx, query, limit)
		products = matched
	}
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *service) listNewest(ctx context.Context, limit int) ([]ProductView, error) {
	products, err := s.repo.ListNewest(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list newest products")
	}
	return NewProductViews(products), nil
}

func (s *service) searchByName(ctx context.Context, query string, limit int) ([]ProductView, error) {
	products, err := s.repo.SearchByName(ctx, query, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search products")
	}
	return NewProductViews(products), nil
}

func (s *service) ListAll(ctx context.Context) ([]ListItemView, error) {
	rows, err := s.repo.ListAllJoined(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	items := make([]ListItemView, 0, len(rows))
	for _, row := range rows {
		items = append(items, NewListItemView(row))
	}
	return items, nil
}

// Update applies an overwrite-merge of the provided fields and returns the
// reloaded product. An empty input still stamps updated_at.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductView, error) {
	fields := input.fields()
	fields["updated_at"] = s.now().UTC()

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}

	return s.GetByID(ctx, id)
}

func (in UpdateProductInput) fields() map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Tags != nil {
		fields["tags"] = pq.StringArray(*in.Tags)
	}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.SubcategoryID != nil {
		fields["subcategory_id"] = *in.SubcategoryID
	}
	if in.SubsubcategoryID != nil {
		fields["subsubcategory_id"] = *in.SubsubcategoryID
	}
	if in.InStock != nil {
		fields["in_stock"] = *in.InStock
	}
	return fields
}
