package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/api"
	apiMiddleware "github.com/teodoragpaula1-maker/ADHDaily-backend/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
	)
	taskHandler := api.NewTaskHandler(app.taskManager, app.focusSelector)
	identityMiddleware := apiMiddleware.NewIdentityMiddleware(app.identityResolver)

	// Authentication endpoints (public)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Strictly authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(identityMiddleware.RequireAuth)

		r.Get("/auth/me", authHandler.Me)
	})

	// Identity-resolved routes: a valid token selects that user, no token
	// selects the shared demo identity.
	r.Group(func(r chi.Router) {
		r.Use(identityMiddleware.Resolve)

		r.Get("/tasks", taskHandler.List)
		r.Post("/tasks", taskHandler.Create)
		r.Get("/tasks/focus", taskHandler.Focus)
		r.Get("/tasks/completed", taskHandler.Completed)
		r.Post("/tasks/{id}/complete", taskHandler.Complete)
		r.Delete("/tasks/{id}", taskHandler.Delete)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
