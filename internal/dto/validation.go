package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations installs the custom binding validations used by the
// DTOs: "dgt0" (decimal strictly positive) and "dgte0" (decimal
// non-negative). Gin's validator cannot apply gt/gte to decimal.Decimal
// because it is a struct, not a numeric kind.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("dgt0", decimalGreaterThanZero); err != nil {
		return err
	}
	return v.RegisterValidation("dgte0", decimalNonNegative)
}

func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.GreaterThan(decimal.Zero)
}

func decimalNonNegative(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.GreaterThanOrEqual(decimal.Zero)
}
