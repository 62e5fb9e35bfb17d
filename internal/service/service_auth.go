package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/myantech/erp-api/internal/authz"
	"github.com/myantech/erp-api/internal/config"
	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/internal/store"
	"github.com/myantech/erp-api/internal/utils"
	"github.com/myantech/erp-api/internal/validators"
	"github.com/myantech/erp-api/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username does not exist so that a
// failed login takes the same time either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is used to look up users on login.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	hashCost int
}

// NewAuthService constructs an AuthService from the token settings in cfg.
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		hashCost:       bcrypt.DefaultCost,
	}
}

// Login authenticates an existing user.
//
// Returns the user's principal or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials if the user does not exist or the password does
//     not match.
//   - ErrStorageFailure if the lookup fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("invalid login request")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		log.Info().Str("func", "*authService.Login").Str("username", req.Username).Msg("unknown username")
		return models.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.Principal{}, ErrStorageFailure
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("wrong password")
		return models.Principal{}, ErrInvalidCredentials
	}

	principal, ok := user.Principal()
	if !ok {
		log.Error().Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("stored user has no usable role")
		return models.Principal{}, ErrInvalidCredentials
	}

	return principal, nil
}

// CreateToken issues a signed JWT for principal that expires after the
// configured token duration.
func (a *authService) CreateToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, principal, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyCredential validates signature, issuer and expiry of raw and
// returns the principal it carries. It never panics on malformed input.
func (a *authService) VerifyCredential(ctx context.Context, raw string) (models.Principal, error) {
	if raw == "" {
		return models.Principal{}, fmt.Errorf("%w: no credential presented", authz.ErrUnauthenticated)
	}

	token, err := utils.ValidateAndParseJWTToken(raw, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", authz.ErrUnauthenticated, err)
	}

	principal, err := token.Claims.Principal()
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", authz.ErrUnauthenticated, err)
	}

	return principal, nil
}

// HashPassword returns a bcrypt hash of password. Passwords longer than
// bcrypt accepts are reported as ErrInvalidDataProvided.
func (a *authService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.hashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return string(hash), nil
}
