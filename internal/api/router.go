package api

import (
	"autosallon/internal/api/handler"
	"autosallon/internal/api/middleware"
	"autosallon/internal/app/service"
	"autosallon/internal/platform/config"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	authService *service.AuthService,
	carService *service.CarService,
	leadService *service.LeadService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	cfg := config.AppConfig

	r.Route("/api", func(api chi.Router) {
		// Resolve the session cookie (when present) for every API route.
		api.Use(middleware.SessionLoader(authService, cfg.SessionCookieName))

		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService, cfg.SessionCookieName, cfg.SessionTTL, cfg.CookieSecure)
		authHandler.RegisterRoutes(api)

		// Car routes (public reads, admin mutations)
		carHandler := handler.NewCarHandler(carService)
		api.Route("/cars", carHandler.RegisterRoutes)

		// Public lead forms
		contactHandler := handler.NewContactHandler(leadService)
		sellRequestHandler := handler.NewSellRequestHandler(leadService)
		api.Post("/contact", contactHandler.CreateContact)
		api.Post("/sell", sellRequestHandler.CreateSellRequest)

		// Admin view of submitted leads
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin)
			admin.Get("/contacts", contactHandler.ListContacts)
			admin.Post("/contacts", contactHandler.CreateContact)
			admin.Delete("/contacts/{contactID}", contactHandler.DeleteContact)
			admin.Get("/sell-requests", sellRequestHandler.ListSellRequests)
			admin.Delete("/sell-requests/{requestID}", sellRequestHandler.DeleteSellRequest)
		})
	})

	return r
}
