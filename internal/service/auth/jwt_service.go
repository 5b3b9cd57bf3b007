package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/market-api/internal/domain"
)

// JWTService defines operations for managing JWT identity tokens.
type JWTService interface {
	// GenerateToken creates a signed token carrying the user's ID, name and status.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies signature and expiry and extracts the claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of an identity token.
type Claims struct {
	UserID    uuid.UUID // sub
	Name      string    // username
	Status    domain.UserStatus
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string // jti
}

// Caller is the authenticated identity attached to a request.
type Caller struct {
	UserID uuid.UUID
	Name   string
	Status domain.UserStatus
}

// Caller returns the identity the claims were issued for.
func (c *Claims) Caller() Caller {
	return Caller{UserID: c.UserID, Name: c.Name, Status: c.Status}
}
