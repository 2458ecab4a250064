package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/saadtahsin/portfolio-backend/errs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the JSON field names the client sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// Validate checks an entity against its schema tags and returns a 400-level
// *errs.ApiErr listing every violated field, or nil when the payload is valid.
func Validate(entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs.NewInternalErrorWithCause("schema validation failed", err)
	}

	violations := make([]errs.FieldViolation, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		violations = append(violations, errs.FieldViolation{
			Field:  fieldErr.Field(),
			Reason: reasonFor(fieldErr),
		})
	}
	return errs.NewValidationError("Invalid data", violations)
}

func reasonFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	case "min":
		if fieldErr.Kind() == reflect.Slice || fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("must have at least %s items", fieldErr.Param())
		}
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}
