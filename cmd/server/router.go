package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/taskora/taskora-api/internal/api"
	"github.com/taskora/taskora-api/internal/api/middleware"
	"github.com/taskora/taskora-api/internal/api/shared"
)

// routes builds the HTTP route tree. Registration, login, refresh, and
// user lookups are public; everything under /tasks requires a valid
// access token.
func (app *application) routes(
	authHandler *api.AuthHandler,
	taskHandler *api.TaskHandler,
	authMiddleware *middleware.AuthMiddleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/users", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/auth/refresh", authHandler.RefreshToken)
	r.Get("/users/{id}", authHandler.GetUserByID)
	r.Get("/users/by-username/{username}", authHandler.GetUserByUsername)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/tasks", taskHandler.Create)
		r.Get("/tasks", taskHandler.List)
		r.Put("/tasks/{id}/title", taskHandler.UpdateTitle)
		r.Put("/tasks/{id}/description", taskHandler.UpdateDescription)
		r.Put("/tasks/{id}/status", taskHandler.UpdateStatus)
		r.Delete("/tasks/{id}", taskHandler.Delete)
	})

	return r
}
