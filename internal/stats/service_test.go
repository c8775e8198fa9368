package stats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	pkgerrors "github.com/mayaverdell/threadline-backend/pkg/errors"
)

func TestSummarySerializesClientKeys(t *testing.T) {
	raw, err := json.Marshal(Summary{TotalProducts: 3, InStockCount: 2, OutOfStock: 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body map[string]int
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["totalProducts"] != 3 || body["inStockCount"] != 2 || body["outOfStockCount"] != 1 {
		t.Fatalf("unexpected keys in %s", raw)
	}
}

func TestSummaryCountsSplitByFlag(t *testing.T) {
	svc := NewService(stubLister{flags: []bool{true, false, true, false, false}})

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalProducts != 5 {
		t.Fatalf("expected total 5, got %d", summary.TotalProducts)
	}
	if summary.InStockCount != 2 {
		t.Fatalf("expected 2 in stock, got %d", summary.InStockCount)
	}
	if summary.OutOfStock != 3 {
		t.Fatalf("expected 3 out of stock, got %d", summary.OutOfStock)
	}
}

func TestSummaryEmptyCatalog(t *testing.T) {
	svc := NewService(stubLister{})

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalProducts != 0 || summary.InStockCount != 0 || summary.OutOfStock != 0 {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
}

func TestSummaryWrapsListerError(t *testing.T) {
	svc := NewService(stubLister{err: errors.New("boom")})

	_, err := svc.Summary(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

type stubLister struct {
	flags []bool
	err   error
}

func (s stubLister) ListStockFlags(ctx context.Context) ([]bool, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.flags, nil
}
