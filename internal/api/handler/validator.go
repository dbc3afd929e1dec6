package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/freelancehub/dashboard/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	// Report json names so messages match the request payload.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. A single failing field
// yields a *domain.ValidationError; several are joined under domain.ErrValidation.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	if len(ve) == 1 {
		return fieldError(ve[0])
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe).Error())
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

// fieldError converts a single FieldError into a domain validation error.
func fieldError(fe validator.FieldError) *domain.ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.NewValidationError(field, "is required")
	case "gt":
		return domain.NewValidationError(field, "must be greater than "+fe.Param())
	case "datetime":
		return domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	case "max":
		return domain.NewValidationError(field, "must be at most "+fe.Param()+" characters")
	case "oneof":
		return domain.NewValidationError(field, "must be one of: "+fe.Param())
	default:
		return domain.NewValidationError(field, fmt.Sprintf("failed validation (%s)", fe.Tag()))
	}
}
