package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/format"
)

// NewValidator builds the shared validator instance. Field names in error
// messages come from json tags, and the loose_email tag applies the
// permissive pattern from pkg/format.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return format.ValidateEmail(fl.Field().String())
	})

	_ = v.RegisterValidation("name", func(fl validator.FieldLevel) bool {
		return format.ValidateName(fl.Field().String())
	})

	return v
}

// validationError translates validator failures into a field-tagged 400
// error. Messages cite the concrete bound so callers can fix their input
// without reading the schema.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, "invalid payload")
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}

	return apperrors.Validation("validation failed", fields...)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "loose_email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "name":
		return fmt.Sprintf("%s must be between 2 and 100 characters", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
