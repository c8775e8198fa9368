package controllers

import (
	"net/http"

	"github.com/mayaverdell/threadline-backend/api/responses"
	"github.com/mayaverdell/threadline-backend/internal/stats"
	"github.com/mayaverdell/threadline-backend/pkg/logger"
)

// AdminStats returns the catalog stock overview.
func AdminStats(svc stats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
