package config

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("numeric_id", validateNumericID)
	return v
}

// validateNumericID accepts identifiers that arrive as strings on the wire
// but must parse as positive integers, e.g. "101" but not "abc" or "-3".
func validateNumericID(fl validator.FieldLevel) bool {
	id, err := strconv.ParseInt(fl.Field().String(), 10, 64)
	return err == nil && id > 0
}
