package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/models"
)

// structValidator validates structs by their `validate` tags.
type structValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a [Validator] backed by go-playground/validator.
// Besides the built-in tags it understands "role", which accepts any known
// [models.Role] name.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseRole(fl.Field().String())
		return ok
	})

	return &structValidator{validate: v}
}

// Validate checks every tagged field of value, or only the named struct
// fields when fields is non-empty. Failures wrap [ErrInvalidInput] and list
// the offending fields.
func (s *structValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = s.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		failed := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			failed = append(failed, fe.Field()+" "+fe.Tag())
		}
		logger.FromContext(ctx).Debug().Strs("failed", failed).Msg("validation failed")
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(failed, ", "))
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
