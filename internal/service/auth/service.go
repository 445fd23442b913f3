package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/platform/logger"
	"github.com/taskora/taskora-api/internal/store"
)

// Service bundles credential verification on top of the user store.
type Service struct {
	userStore store.UserStore
	verifier  PasswordVerifier
	logger    *slog.Logger
}

// NewService creates an authentication Service.
// If log is nil, the default logger is used.
func NewService(userStore store.UserStore, verifier PasswordVerifier, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		userStore: userStore,
		verifier:  verifier,
		logger:    log.With(slog.String("component", "auth_service")),
	}
}

// AuthenticateUser looks up a user by username and verifies the supplied
// password against the stored hash.
//
// Both an unknown username and a password mismatch return
// ErrInvalidCredentials; the caller cannot tell the two apart. Only backend
// faults (database unavailable, etc.) surface as distinct errors.
func (s *Service) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("authentication failed: unknown username")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user during authentication",
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("authentication failed: password mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
