package service

import (
	"context"

	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/internal/validators"
	"github.com/myantech/erp-api/models"
)

// userService validates and hashes user input before handing it to the
// generic resource service. Other operations pass through.
type userService struct {
	ResourceService[models.User]
	hasher    AuthService
	validator validators.Validator
}

// NewUserService wraps inner so that Create stores a bcrypt hash and both
// Create and Update reject unknown roles.
func NewUserService(inner ResourceService[models.User], hasher AuthService, validator validators.Validator) ResourceService[models.User] {
	return &userService{ResourceService: inner, hasher: hasher, validator: validator}
}

// Create hashes user.Password into PasswordHash. A missing password leaves
// the hash empty, which the users table rejects.
func (u *userService) Create(ctx context.Context, user models.User) (int64, error) {
	if err := u.checkRole(ctx, "*userService.Create", &user); err != nil {
		return 0, err
	}

	if user.Password != nil && *user.Password != "" {
		hash, err := u.hasher.HashPassword(*user.Password)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Str("func", "*userService.Create").Msg("password rejected")
			return 0, ErrInvalidDataProvided
		}
		user.PasswordHash = hash
	}
	user.Password = nil

	return u.ResourceService.Create(ctx, user)
}

func (u *userService) Update(ctx context.Context, user models.User) error {
	if err := u.checkRole(ctx, "*userService.Update", &user); err != nil {
		return err
	}

	return u.ResourceService.Update(ctx, user)
}

// checkRole validates user and rewrites its role in the stored spelling.
func (u *userService) checkRole(ctx context.Context, funcName string, user *models.User) error {
	if err := u.validator.Validate(ctx, *user); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", funcName).Msg("user rejected")
		return ErrInvalidDataProvided
	}

	role, _ := models.ParseRole(*user.Role)
	canonical := string(role)
	user.Role = &canonical

	return nil
}
