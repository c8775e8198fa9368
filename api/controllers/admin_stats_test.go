package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mayaverdell/threadline-backend/internal/stats"
	pkgerrors "github.com/mayaverdell/threadline-backend/pkg/errors"
)

type stubStatsService struct {
	summary *stats.Summary
	err     error
}

func (s stubStatsService) Summary(ctx context.Context) (*stats.Summary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

func TestAdminStats(t *testing.T) {
	handler := AdminStats(stubStatsService{summary: &stats.Summary{
		TotalProducts: 12,
		InStockCount:  9,
		OutOfStock:    3,
	}}, testLogger())

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/admin/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["totalProducts"] != 12 || body["inStockCount"] != 9 || body["outOfStockCount"] != 3 {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestAdminStatsFailure(t *testing.T) {
	handler := AdminStats(stubStatsService{err: pkgerrors.New(pkgerrors.CodeInternal, "stats failed")}, testLogger())

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/admin/stats", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
