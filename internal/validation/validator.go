package validation

import (
	"reflect"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{7,23}[0-9]$`)

// New returns a validator with the project's custom tags registered:
//
//	phone       digits with optional leading +, spaces and dashes, 9 to 25 characters
//	alphaspace  letters and single spaces only, Unicode aware
//
// decimal.Decimal fields validate as float64, so gt and gte apply to money.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("alphaspace", validateAlphaSpace)
	return v
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validateAlphaSpace(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	prevSpace := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			prevSpace = false
		case r == ' ' && !prevSpace:
			prevSpace = true
		default:
			return false
		}
	}
	return !prevSpace
}
