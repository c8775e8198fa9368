package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mayaverdell/threadline-backend/api/middleware"
	"github.com/mayaverdell/threadline-backend/internal/orders"
)

type stubOrdersRepo struct {
	views  []orders.OrderView
	userID uuid.UUID
}

func (s *stubOrdersRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]orders.OrderView, error) {
	s.userID = userID
	return s.views, nil
}

func TestUserOrdersRequiresIdentity(t *testing.T) {
	handler := UserOrders(&stubOrdersRepo{}, testLogger())

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/user/orders", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserOrdersListsHistory(t *testing.T) {
	userID := uuid.New()
	stub := &stubOrdersRepo{views: []orders.OrderView{{
		ID:        uuid.New(),
		Payload:   json.RawMessage(`{"total":"35.00"}`),
		CreatedAt: time.Now(),
	}}}
	handler := UserOrders(stub, testLogger())

	req := httptest.NewRequest("GET", "/user/orders", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.userID != userID {
		t.Fatalf("expected repo called with %s, got %s", userID, stub.userID)
	}
	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("expected 1 order, got %d", len(body))
	}
}
