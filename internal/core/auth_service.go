package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"genesis-backend-go/internal/db"
	"genesis-backend-go/internal/models"
)

// Sentinel errors for the authentication pipeline. Handlers map these
// to HTTP status codes in one place.
var (
	ErrMissingScheme = errors.New("authorization header format must be 'Bearer {token}'")
	ErrInvalidToken  = errors.New("invalid authentication token")
	ErrExpiredToken  = errors.New("authentication token has expired")
	ErrAuthBackend   = errors.New("could not validate credentials")
	ErrAdminRequired = errors.New("insufficient permissions, admin access required")
)

// RequireAdmin is the single authorization predicate shared by every
// privileged endpoint.
func RequireAdmin(identity *models.Identity) error {
	if identity == nil || !identity.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

// authService implements the AuthService interface. It combines token
// verification with a best-effort profile lookup: a missing or failed
// profile read yields default (non-admin, no permissions) attributes
// rather than an error.
type authService struct {
	verifier TokenVerifier
	userRepo db.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(verifier TokenVerifier, userRepo db.UserRepository, logger *zap.Logger) AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{
		verifier: verifier,
		userRepo: userRepo,
		logger:   logger,
	}
}

// BuildContext verifies the bearer token carried in authorizationHeader
// and assembles the Identity for this request. It fails before any
// handler logic runs; no mutation happens on a failed build.
func (s *authService) BuildContext(ctx context.Context, authorizationHeader string) (*models.Identity, error) {
	if s.verifier == nil {
		return nil, fmt.Errorf("%w: token verifier not initialized", ErrAuthBackend)
	}

	if authorizationHeader == "" {
		return nil, ErrMissingScheme
	}
	parts := strings.Split(authorizationHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, ErrMissingScheme
	}
	idToken := parts[1]

	token, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if token.UID == "" {
		return nil, fmt.Errorf("%w: verifier returned empty subject", ErrAuthBackend)
	}

	identity := &models.Identity{
		UID:           token.UID,
		Email:         token.Email,
		EmailVerified: token.EmailVerified,
		Permissions:   []string{},
	}

	profile, err := s.userRepo.GetByID(ctx, token.UID)
	switch {
	case err == nil && profile != nil:
		identity.IsAdmin = profile.IsAdmin
		if len(profile.Permissions) > 0 {
			identity.Permissions = profile.Permissions
		}
	case errors.Is(err, db.ErrNotFound):
		// No profile document yet; defaults stand.
	case err != nil:
		s.logger.Warn("Profile lookup failed, continuing with default attributes",
			zap.String("uid", token.UID), zap.Error(err))
	}

	return identity, nil
}
