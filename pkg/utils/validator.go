package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("single_line", validateSingleLine)
	v.RegisterValidation("cents", validateCents)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Messages flattens validation errors into one readable line per field.
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s is required", field))
		case "email":
			out = append(out, fmt.Sprintf("%s must be a valid email address", field))
		case "max":
			out = append(out, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "single_line":
			out = append(out, fmt.Sprintf("%s must be a single line", field))
		case "cents":
			out = append(out, fmt.Sprintf("%s must have at most two decimal places", field))
		default:
			out = append(out, fmt.Sprintf("%s is invalid", field))
		}
	}
	return out
}

// Header-bound values such as names and subjects must not span lines.
func validateSingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}

// Prices are charged in minor units, so a third decimal place would be
// rounded away between display and checkout.
func validateCents(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(fl.Field().Float()).Exponent() >= -2
	}
	return false
}
