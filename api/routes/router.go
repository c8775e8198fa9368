package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mayaverdell/threadline-backend/api/controllers"
	"github.com/mayaverdell/threadline-backend/api/middleware"
	"github.com/mayaverdell/threadline-backend/internal/admins"
	"github.com/mayaverdell/threadline-backend/internal/catalog"
	"github.com/mayaverdell/threadline-backend/internal/orders"
	"github.com/mayaverdell/threadline-backend/internal/reservations"
	"github.com/mayaverdell/threadline-backend/internal/stats"
	"github.com/mayaverdell/threadline-backend/pkg/config"
	"github.com/mayaverdell/threadline-backend/pkg/db"
	"github.com/mayaverdell/threadline-backend/pkg/logger"
)

// NewRouter wires every route with its middleware chain. Credential checks
// run before any handler or query does.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	cacheP db.Pinger,
	catalogService catalog.Service,
	reservationService reservations.Service,
	statsService stats.Service,
	ordersRepo orders.Repository,
	adminChecker admins.Checker,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	requireAuth := middleware.Auth(cfg.JWT, logg)
	requireAdmin := middleware.RequireAdmin(adminChecker, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, cacheP, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(catalogService, logg))
			r.Get("/search", controllers.ProductSearch(catalogService, logg))
			r.Get("/category", controllers.ProductsByCategory(catalogService, logg))
			r.Get("/{productID}", controllers.ProductDetail(catalogService, logg))
			r.With(requireAuth, requireAdmin).Put("/{productID}/edit", controllers.AdminUpdateProduct(catalogService, logg))
		})

		r.Post("/cart/release", controllers.CartRelease(reservationService, logg))

		r.Route("/user", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/orders", controllers.UserOrders(ordersRepo, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)
			r.Get("/stats", controllers.AdminStats(statsService, logg))
		})
	})

	return r
}
