package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	pkgauth "github.com/mayaverdell/threadline-backend/pkg/auth"
	"github.com/mayaverdell/threadline-backend/pkg/config"
	"github.com/mayaverdell/threadline-backend/pkg/logger"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "threadline-test",
		ExpirationMinutes: 15,
	}
}

func testMWLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "middleware-test", Output: io.Discard})
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	handler := Auth(testJWTConfig(), testMWLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/cart/release", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	handler := Auth(testJWTConfig(), testMWLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest("POST", "/cart/release", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthSeedsUserID(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	token, err := pkgauth.MintAccessToken(cfg, time.Now(), pkgauth.AccessTokenPayload{UserID: userID})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	var seen string
	handler := Auth(cfg, testMWLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/user/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if seen != userID.String() {
		t.Fatalf("expected user id %s in context, got %q", userID, seen)
	}
}

func TestAuthRejectsWrongIssuer(t *testing.T) {
	other := testJWTConfig()
	other.Issuer = "someone-else"
	token, err := pkgauth.MintAccessToken(other, time.Now(), pkgauth.AccessTokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	handler := Auth(testJWTConfig(), testMWLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest("GET", "/user/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
