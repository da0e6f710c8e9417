package routers

import (
	"github.com/go-chi/chi/v5"

	"prepmate/server/internal/handlers"
	"prepmate/server/internal/middleware"
	"prepmate/server/internal/models"
)

func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler, jwtSecret string) {
	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.RegisterRequest]()).Post("/register", authHandler.RegisterHandler)
		r.With(middleware.ValidateRequest[*models.LoginRequest]()).Post("/login", authHandler.LoginHandler)
		r.With(middleware.RequireAuth(jwtSecret)).Get("/me", authHandler.MeHandler)
	})
}
