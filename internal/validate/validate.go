// Package validate checks operation parameters before any network call
// and translates failures into deterministic, field-based messages.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/laixingyu123/ay32-client-go/internal/apierrors"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their wire names, so messages match what the
	// caller actually sent.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return val
}

// Struct validates s against its validate tags. The first failure is
// returned as an *apierrors.ValidationError.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &apierrors.ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		}
	}
	return err
}

// Failf builds a validation error for checks that tags cannot express.
func Failf(field, format string, args ...any) error {
	return &apierrors.ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func message(fe validator.FieldError) string {
	name := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("%s must be at most %s bytes", name, fe.Param())
		default:
			return fmt.Sprintf("%s must be at most %s", name, fe.Param())
		}
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "ip":
		return fmt.Sprintf("%s must be a valid IP address", name)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
