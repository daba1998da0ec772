package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/user-api/internal/api"
	apiMiddleware "github.com/phrazzld/user-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(apiMiddleware.Recover)
	r.Use(middleware.Timeout(app.config.Server.RequestTimeout))

	// Must be set before any sub-router is mounted so that it is inherited.
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	userHandler := api.NewUserHandler(app.userService, app.logger)
	healthHandler := api.NewHealthHandler(app.healthChecker)

	userRoutes := func(r chi.Router) {
		r.Get("/users/{id}", userHandler.GetUser)
		r.Post("/users", userHandler.CreateUser)
	}

	userRoutes(r)
	r.Route("/api", userRoutes)

	r.Get("/health", healthHandler.Health)

	return r
}
