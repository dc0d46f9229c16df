package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// imageURLPattern matches http(s) links to the image formats the gallery
// can show.
var imageURLPattern = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|webp|gif)$`)

// Validate is shared by all form handlers. Fields are reported by their
// label tag when they have one.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}

		return f.Name
	})

	// registering a static tag on a fresh validator can't fail
	_ = v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return imageURLPattern.MatchString(fl.Field().String())
	})

	return v
}

// ValidationMessages turns a validator error into one message per failed
// field. Other errors yield a single generic message.
func ValidationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{"Invalid form data"}
	}

	out := make([]string, len(validationErrors))
	for i, ve := range validationErrors {
		out[i] = fieldMessage(ve)
	}

	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("Please enter a valid %s address", fe.Field())
	case "number":
		return fmt.Sprintf("%s must be a number", fe.Field())
	case "url":
		return fmt.Sprintf("Please enter a valid %s URL", fe.Field())
	case "imageurl":
		return fmt.Sprintf("%s must link to a jpg, jpeg, png, webp or gif image", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s must be %s %s", fe.Field(), map[string]string{"min": "at least", "max": "at most"}[fe.Tag()], fe.Param())
	default:
		return fmt.Sprintf("Field '%s' failed validation tag '%s'", fe.Field(), fe.Tag())
	}
}
