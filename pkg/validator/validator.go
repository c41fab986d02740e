package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MinPasswordScore is the number of strength requirements a password must meet.
const MinPasswordScore = 3

var specialCharacter = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report json names so messages match the request payload.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return PasswordScore(fl.Field().String()) >= MinPasswordScore
	})
	v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = field + " is required"
		case "email":
			errs[field] = field + " must be a valid email address"
		case "min":
			errs[field] = field + " must be at least " + e.Param() + " characters"
		case "max":
			errs[field] = field + " must be at most " + e.Param() + " characters"
		case "gte":
			errs[field] = field + " must be greater than or equal to " + e.Param()
		case "lte":
			errs[field] = field + " must be less than or equal to " + e.Param()
		case "gt":
			errs[field] = field + " must be greater than " + e.Param()
		case "oneof":
			errs[field] = field + " must be one of: " + e.Param()
		case "eqfield":
			errs[field] = "Passwords do not match"
		case "strong_password":
			errs[field] = "Please create a stronger password with at least 3 requirements met"
		case "numeric", "number":
			errs[field] = field + " must be a number"
		case "boolean":
			errs[field] = field + " must be true or false"
		case "iso_date":
			errs[field] = field + " must be a date in YYYY-MM-DD format"
		default:
			errs[field] = field + " is invalid"
		}
	}

	return errs
}

// PasswordScore counts the strength requirements met: length >= 8, an uppercase letter,
// a lowercase letter, a digit and a special character.
func PasswordScore(password string) int {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	score := 0
	for _, ok := range []bool{len(password) >= 8, upper, lower, digit, specialCharacter.MatchString(password)} {
		if ok {
			score++
		}
	}
	return score
}
