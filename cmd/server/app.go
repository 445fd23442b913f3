package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskora/taskora-api/internal/api"
	authmiddleware "github.com/taskora/taskora-api/internal/api/middleware"
	"github.com/taskora/taskora-api/internal/config"
	"github.com/taskora/taskora-api/internal/platform/postgres"
	"github.com/taskora/taskora-api/internal/service/auth"
	"github.com/taskora/taskora-api/internal/store"
)

// application holds the fully wired dependency graph for the server.
type application struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService  auth.JWTService
	authService *auth.Service

	router http.Handler
}

// newApplication wires stores, services, and handlers into a ready-to-run
// application.
func newApplication(cfg *config.Config, appLogger *slog.Logger, db *sql.DB) (*application, error) {
	userStore := postgres.NewPostgresUserStore(db, bcrypt.DefaultCost)
	taskStore := postgres.NewPostgresTaskStore(db)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	verifier := auth.NewBcryptVerifier()
	authService := auth.NewService(userStore, verifier, appLogger)

	authHandler := api.NewAuthHandler(userStore, authService, jwtService, &cfg.Auth)
	taskHandler := api.NewTaskHandler(taskStore)
	authMiddleware := authmiddleware.NewAuthMiddleware(jwtService)

	app := &application{
		cfg:         cfg,
		logger:      appLogger,
		db:          db,
		userStore:   userStore,
		taskStore:   taskStore,
		jwtService:  jwtService,
		authService: authService,
	}
	app.router = app.routes(authHandler, taskHandler, authMiddleware)

	return app, nil
}
