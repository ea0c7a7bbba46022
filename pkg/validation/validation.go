package validation

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance with the project's custom rules registered
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("cityname", validateCityName)
		_ = validate.RegisterValidation("singleline", validateSingleLine)
	})
	return validate
}

// Struct validates a struct using its `validate` tags and returns a readable message on failure
func Struct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%s failed on the '%s' rule", strings.ToLower(fe.Field()), fe.Tag())
	}
	return err
}

// IsCityName reports whether s consists only of letters and spaces, with at least one letter
func IsCityName(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == ' ':
		default:
			return false
		}
	}
	return hasLetter
}

// IsSingleLine reports whether s contains no line breaks
func IsSingleLine(s string) bool {
	return !strings.ContainsAny(s, "\r\n")
}

// Var validates a single value against a tag such as "cityname"
func Var(value interface{}, tag string) error {
	return Validator().Var(value, tag)
}

// FailedTag returns the rule of the first failing field, or "" when err is nil
func FailedTag(err error) string {
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Tag()
	}
	return "invalid"
}

func validateCityName(fl validator.FieldLevel) bool {
	return IsCityName(fl.Field().String())
}

func validateSingleLine(fl validator.FieldLevel) bool {
	return IsSingleLine(fl.Field().String())
}
