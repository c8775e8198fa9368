package controllers

import (
	"net/http"

	"github.com/mayaverdell/threadline-backend/api/responses"
	"github.com/mayaverdell/threadline-backend/api/validators"
	"github.com/mayaverdell/threadline-backend/internal/reservations"
	"github.com/mayaverdell/threadline-backend/pkg/logger"
)

// CartRelease frees a cart reservation and credits the held quantity back to
// inventory.
func CartRelease(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload releaseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Release(r.Context(), payload.ReservationID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"success": true})
	}
}

type releaseRequest struct {
	ReservationID string `json:"reservation_id"`
}
