package stats

import (
	"context"

	pkgerrors "github.com/mayaverdell/threadline-backend/pkg/errors"
)

// Summary is the admin stock overview. Counts are derived from the
// denormalized in_stock flags, so the split always sums to the total.
type Summary struct {
	TotalProducts int `json:"totalProducts"`
	InStockCount  int `json:"inStockCount"`
	OutOfStock    int `json:"outOfStockCount"`
}

type stockFlagLister interface {
	ListStockFlags(ctx context.Context) ([]bool, error)
}

// Service computes catalog stock statistics.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	catalog stockFlagLister
}

// NewService builds the stats service over the catalog repository.
func NewService(catalog stockFlagLister) Service {
	return &service{catalog: catalog}
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	flags, err := s.catalog.ListStockFlags(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list stock flags")
	}

	summary := &Summary{TotalProducts: len(flags)}
	for _, inStock := range flags {
		if inStock {
			summary.InStockCount++
		}
	}
	summary.OutOfStock = summary.TotalProducts - summary.InStockCount
	return summary, nil
}
