package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mayaverdell/threadline-backend/api/responses"
	"github.com/mayaverdell/threadline-backend/internal/admins"
	pkgerrors "github.com/mayaverdell/threadline-backend/pkg/errors"
	"github.com/mayaverdell/threadline-backend/pkg/logger"
)

// RequireAdmin gates a route on the admin allow-list. Runs after Auth, so the
// caller identity is already in the context.
func RequireAdmin(checker admins.Checker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := UserIDFromContext(r.Context())
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}
			userID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid user id"))
				return
			}

			capability, err := checker.Check(r.Context(), userID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check admin capability"))
				return
			}
			if !capability.IsAdmin() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin access required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
