package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/ports"
)

type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService validates credentials before they reach the identity provider
// and keeps a profile's session in step with the outcome.
type AuthService struct {
	provider ports.IdentityProvider
	log      logrus.FieldLogger
}

func NewAuthService(provider ports.IdentityProvider, logger logrus.FieldLogger) *AuthService {
	return &AuthService{
		provider: provider,
		log:      logger,
	}
}

func ValidateSignUp(req SignUpRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || req.ConfirmPassword == "" {
		return domain.ErrMissingFields
	}

	if req.Password != req.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	if len(req.Password) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	return nil
}

func (s *AuthService) SignUp(ctx context.Context, session *IdentitySession, req SignUpRequest) (domain.Identity, error) {
	if err := ValidateSignUp(req); err != nil {
		return domain.Identity{}, err
	}

	identity, err := s.provider.SignUp(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		s.log.WithError(err).Warn("Sign up failed")
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			return domain.Identity{}, domain.ErrEmailAlreadyRegistered
		}

		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrSignUpFailed, err)
	}

	session.Set(identity)
	return identity, nil
}

func (s *AuthService) SignIn(ctx context.Context, session *IdentitySession, req SignInRequest) (domain.Identity, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return domain.Identity{}, domain.ErrMissingFields
	}

	identity, err := s.provider.SignIn(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		s.log.WithError(err).Warn("Sign in failed")
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.Identity{}, domain.ErrInvalidCredentials
		}

		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrSignInFailed, err)
	}

	session.Set(identity)
	return identity, nil
}

func (s *AuthService) SignOut(session *IdentitySession) {
	session.Clear()
}

func (s *AuthService) UpdateDisplayName(ctx context.Context, session *IdentitySession, displayName string) (domain.Identity, error) {
	current := session.Current()
	if current == nil {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return domain.Identity{}, domain.ErrMissingFields
	}

	identity, err := s.provider.UpdateDisplayName(ctx, current.UID, displayName)
	if err != nil {
		s.log.WithError(err).WithField("user_id", current.UID).Error("Failed to update display name")
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrProfileUpdateFailed, err)
	}

	session.Set(identity)
	return identity, nil
}
