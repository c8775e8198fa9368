package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mayaverdell/threadline-backend/api/middleware"
	"github.com/mayaverdell/threadline-backend/api/responses"
	"github.com/mayaverdell/threadline-backend/internal/orders"
	pkgerrors "github.com/mayaverdell/threadline-backend/pkg/errors"
	"github.com/mayaverdell/threadline-backend/pkg/logger"
)

// UserOrders returns the caller's order history, newest first.
func UserOrders(repo orders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := middleware.UserIDFromContext(r.Context())
		if raw == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id"))
			return
		}

		views, err := repo.ListByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, views)
	}
}
