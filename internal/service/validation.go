package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"art-collector/internal/domain/media"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("nonneg", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && n >= 0
	})
	_ = v.RegisterValidation("flag", func(fl validator.FieldLevel) bool {
		_, ok := parseFlag(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return isPasswordStrong(fl.Field().String())
	})

	return v
}

// validationError turns validator output into a *ValidationError with one
// message per field. Other errors are returned as they are.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.add(fieldMessage(fe))
	}
	return ve
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "nonneg":
		return fmt.Sprintf("%q must be a number greater than or equal to 0", field)
	case "number":
		return fmt.Sprintf("%q must be a whole number greater than or equal to 0", field)
	case "flag":
		return fmt.Sprintf("%q must be a boolean", field)
	case "datetime":
		return fmt.Sprintf("%q must be a valid date (YYYY-MM-DD)", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "alphanum":
		return fmt.Sprintf("%q must only contain letters and numbers", field)
	case "min", "max":
		return fmt.Sprintf("%q length must be within limits (%s %s)", field, fe.Tag(), fe.Param())
	case "strongpassword":
		return fmt.Sprintf("%q %s", field, strings.TrimPrefix(ErrWeakPassword.Error(), "password "))
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}

func parseFlag(v string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no":
		return false, true
	default:
		return false, false
	}
}

func validateUploads(ve *ValidationError, uploads []media.Upload) {
	for _, up := range uploads {
		if !media.AllowedExtension(up.Name) {
			ve.add(fmt.Sprintf("%q only image files are allowed (jpg, jpeg, png, gif): %s", "images", up.Name))
			continue
		}
		if up.Size > media.MaxUploadSize {
			ve.add(fmt.Sprintf("%q file %s is larger than %d bytes", "images", up.Name, media.MaxUploadSize))
		}
	}
}

func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
