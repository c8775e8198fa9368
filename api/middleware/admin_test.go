package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mayaverdell/threadline-backend/internal/admins"
)

type stubChecker struct {
	capability admins.Capability
	err        error
}

func (s stubChecker) Check(ctx context.Context, userID uuid.UUID) (admins.Capability, error) {
	if s.err != nil {
		return admins.CapabilityNone, s.err
	}
	return s.capability, nil
}

func TestRequireAdminWithoutIdentity(t *testing.T) {
	handler := RequireAdmin(stubChecker{capability: admins.CapabilityAdmin}, testMWLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/stats", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdminForbidsRegularUser(t *testing.T) {
	handler := RequireAdmin(stubChecker{capability: admins.CapabilityNone}, testMWLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest("GET", "/admin/stats", nil)
	req = req.WithContext(WithUserID(req.Context(), uuid.NewString()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdminAllowsListedUser(t *testing.T) {
	called := false
	handler := RequireAdmin(stubChecker{capability: admins.CapabilityAdmin}, testMWLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/admin/stats", nil)
	req = req.WithContext(WithUserID(req.Context(), uuid.NewString()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called || rec.Code != http.StatusNoContent {
		t.Fatalf("expected handler to run, called=%v status=%d", called, rec.Code)
	}
}

func TestRequireAdminCheckerFailure(t *testing.T) {
	handler := RequireAdmin(stubChecker{err: errors.New("db down")}, testMWLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest("GET", "/admin/stats", nil)
	req = req.WithContext(WithUserID(req.Context(), uuid.NewString()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
