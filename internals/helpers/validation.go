package helper

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator; field names come from json tags.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// FieldError is a cross-field check failure that still belongs to one json field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// FieldErrors flattens validator errors into field -> messages for JsonValidationError.
// Other errors land under "_".
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var fe *FieldError
	if errors.As(err, &fe) {
		out[fe.Field] = append(out[fe.Field], fe.Message)
		return out
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		if err != nil {
			out["_"] = append(out["_"], err.Error())
		}
		return out
	}
	for _, fe := range ves {
		out[fe.Field()] = append(out[fe.Field()], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "len":
		return fe.Field() + " must have exactly " + fe.Param() + " items"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "url":
		return fe.Field() + " must be a valid URL"
	default:
		return "invalid value"
	}
}
