package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type structValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a Validator that checks the `validate` tags of
// struct values. Field names in the resulting ValidationError are taken from
// the json tag, falling back to the lower-cased Go name.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return strings.ToLower(field.Name)
		}
		return name
	})

	return &structValidator{validate: v}
}

func (s *structValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	val := reflect.ValueOf(obj)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return ErrUnsupportedType
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	result := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		result.Fields[fe.Field()] = message(fe)
	}

	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
