package routers

import (
	"github.com/go-chi/chi/v5"

	"prepmate/server/internal/handlers"
	"prepmate/server/internal/middleware"
	"prepmate/server/internal/models"
)

func ProviderRoutes(r *chi.Mux, providerHandler *handlers.ProviderHandler, jwtSecret string) {
	r.Route("/api/settings/api-key", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))
		r.With(middleware.ValidateRequest[*models.UpdateAPIKeyRequest]()).Put("/", providerHandler.UpdateKeyHandler)
		r.Get("/status", providerHandler.KeyStatusHandler)
	})
}
