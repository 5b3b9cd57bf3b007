package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/market-api/internal/domain"
	"github.com/phrazzld/market-api/internal/platform/logger"
	"github.com/phrazzld/market-api/internal/service/auth"
	"github.com/phrazzld/market-api/internal/store"
)

// dummyPassword is hashed once at startup. Sign-ins for unknown emails are
// compared against that hash so both failure paths do the same bcrypt work.
const dummyPassword = "no-such-user-placeholder-Pw1!"

// RegisterInput holds validated registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Status   domain.UserStatus
}

// IdentityService registers users and exchanges credentials for identity tokens.
type IdentityService interface {
	// Register hashes the password and stores a new user.
	// Returns domain.ErrConflict when the email is already registered.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Authenticate checks an email/password pair and returns a signed token.
	// Unknown email and wrong password both return domain.ErrUnauthorized.
	Authenticate(ctx context.Context, email, password string) (string, error)
}

type identityServiceImpl struct {
	users     store.UserStore
	hasher    auth.PasswordHasher
	tokens    auth.JWTService
	logger    *slog.Logger
	dummyHash string
}

// NewIdentityService creates an IdentityService.
// It hashes a placeholder password up front, so construction costs one bcrypt round.
func NewIdentityService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	logger *slog.Logger,
) (IdentityService, error) {
	if users == nil {
		return nil, errors.New("user store cannot be nil")
	}
	if hasher == nil {
		return nil, errors.New("password hasher cannot be nil")
	}
	if tokens == nil {
		return nil, errors.New("jwt service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare placeholder hash: %w", err)
	}

	return &identityServiceImpl{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger.With("component", "identity_service"),
		dummyHash: dummyHash,
	}, nil
}

// Register implements IdentityService.
func (s *identityServiceImpl) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, NewServiceError("identity", "register", err)
	}

	user, err := domain.NewUser(input.Name, input.Email, hashed, input.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration rejected: email already registered")
			return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
		}
		log.Error("failed to save user", "error", err)
		return nil, NewServiceError("identity", "register", err)
	}

	log.Info("user registered", "user_id", user.ID, "status", user.Status)
	return user, nil
}

// Authenticate implements IdentityService.
func (s *identityServiceImpl) Authenticate(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to look up user", "error", err)
			return "", NewServiceError("identity", "authenticate", err)
		}
		_ = s.hasher.Compare(s.dummyHash, password)
		log.Debug("authentication failed")
		return "", domain.ErrUnauthorized
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			log.Error("stored password hash is unusable", "error", err, "user_id", user.ID)
		}
		log.Debug("authentication failed")
		return "", domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(ctx, user)
	if err != nil {
		return "", NewServiceError("identity", "authenticate", err)
	}

	log.Debug("user authenticated", "user_id", user.ID)
	return token, nil
}
