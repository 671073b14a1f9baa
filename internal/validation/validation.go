// Package validation classifies auth request payloads as pass/fail with
// field-level error reporting. It performs no I/O: uniqueness and
// credential checks belong to the service layer.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=8,max=128,pwlower,pwupper,pwdigit,pwsymbol"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginRequest is the login payload. The password rule is deliberately
// weaker than at registration: existing accounts may predate a strength
// rule change.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

// New builds the validator with the password character-class rules
// registered and field names taken from JSON tags.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "pwlower", hasClass(func(r rune) bool { return r >= 'a' && r <= 'z' }))
	mustRegister(v, "pwupper", hasClass(func(r rune) bool { return r >= 'A' && r <= 'Z' }))
	mustRegister(v, "pwdigit", hasClass(func(r rune) bool { return r >= '0' && r <= '9' }))
	mustRegister(v, "pwsymbol", hasClass(isSymbol))
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func hasClass(match func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if match(r) {
				return true
			}
		}
		return false
	}
}

func isSymbol(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return true
}

// FieldErrors translates a validator error into field name -> ordered
// human-readable messages. Validation short-circuits per field, so each
// field carries at least its first violated rule.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case "email":
			return "Email is required"
		case "password":
			return "Password is required"
		case "confirmPassword":
			return "Please confirm password"
		}
		return "This field is required"
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("Password must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "pwlower":
		return "Password must contain a lowercase letter"
	case "pwupper":
		return "Password must contain an uppercase letter"
	case "pwdigit":
		return "Password must contain a number"
	case "pwsymbol":
		return "Password must contain a special character"
	case "eqfield":
		return "Passwords do not match"
	}
	return "Invalid value"
}
