package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskora/taskora-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	Token        string
	RefreshToken string
	Claims       *auth.Claims
	Err          error
}

// GenerateToken returns the configured token or error.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return m.Token, m.Err
}

// ValidateToken returns the configured claims or error.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Claims, nil
}

// GenerateRefreshToken returns the configured refresh token or error.
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.RefreshToken != "" {
		return m.RefreshToken, m.Err
	}
	return m.Token, m.Err
}

// ValidateRefreshToken returns the configured claims or error.
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Claims, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	ShouldSucceed bool
}

// Compare succeeds or fails based on ShouldSucceed.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return auth.ErrInvalidCredentials
}
