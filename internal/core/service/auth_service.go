package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/peopledesk/workforce-api/internal/core/domain"
	"github.com/peopledesk/workforce-api/internal/core/ports"
)

const defaultTokenTTL = 30 * time.Minute

// TokenConfig carries the signing parameters for issued tokens. Secret,
// Issuer and Audience are required configuration; their absence is a
// startup-time failure handled by the config layer.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// AuthService implements login validation, token issuance and registration
// over a UserRepository and a PasswordHasher.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	throttle ports.LoginThrottle // optional, nil disables throttling
	token    TokenConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewAuthService builds an AuthService. throttle may be nil. A non-positive
// token TTL falls back to 30 minutes.
func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, throttle ports.LoginThrottle, token TokenConfig, log zerolog.Logger) *AuthService {
	if token.TTL <= 0 {
		token.TTL = defaultTokenTTL
	}
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		throttle: throttle,
		token:    token,
		log:      log,
		now:      time.Now,
	}
}

// ValidateLogin reports whether email+password identify an account. An
// unknown email and a wrong password both return false; the caller cannot
// tell them apart, which prevents account enumeration. A hash match that
// merely needs a parameter upgrade still counts as a valid login.
func (s *AuthService) ValidateLogin(ctx context.Context, email, password string) bool {
	if s.throttle != nil {
		allowed, err := s.throttle.Allowed(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
		} else if !allowed {
			s.log.Warn().Str("email", email).Msg("login attempt throttled")
			return false
		}
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.recordFailure(ctx, email)
		return false
	}

	switch s.hasher.Verify(user.PasswordHash, password) {
	case ports.VerifySuccess, ports.VerifySuccessRehash:
		if s.throttle != nil {
			if err := s.throttle.Reset(ctx, email); err != nil {
				s.log.Warn().Err(err).Msg("failed to reset login throttle")
			}
		}
		return true
	default:
		s.recordFailure(ctx, email)
		return false
	}
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}

// GenerateToken issues a signed HS256 token for a known identity. A missing
// identity returns domain.ErrUserNotFound; this is a logical not-found, not
// a fault. The role claim carries the mapped label, falling back to the raw
// numeric representation for unknown role codes.
func (s *AuthService) GenerateToken(ctx context.Context, email string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrUserNotFound
	}

	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": domain.RoleLabel(user.Role),
		"iss":  s.token.Issuer,
		"aud":  s.token.Audience,
		"iat":  now.Unix(),
		"exp":  now.Add(s.token.TTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.token.Secret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Register creates a new system user with a store-assigned id and stores only
// the password hash. It deliberately performs no duplicate-email check;
// duplicate prevention is the caller's responsibility.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string, role int) error {
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	user := &domain.SystemUser{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Created:      s.now().UTC(),
	}

	if _, err := s.repo.Add(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("email", email).Str("role", domain.RoleLabel(role)).Msg("user registered")
	return nil
}
