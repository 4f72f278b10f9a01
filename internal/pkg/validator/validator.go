package validator

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate struct fields, returning field->tag for anything that failed.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

const minPasswordLength = 8

// Password applies the registration password policy. It returns an empty
// string when the password is acceptable, otherwise a human-readable
// reason. Checked before any user row is created.
func Password(pw string) string {
	if len(pw) < minPasswordLength {
		return "password must be at least 8 characters"
	}
	allDigits := true
	for _, r := range pw {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return "password cannot be entirely numeric"
	}
	if strings.TrimSpace(pw) != pw {
		return "password cannot start or end with whitespace"
	}
	return ""
}
