package utils

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("account_type", validateAccountType)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "personal", "business":
		return true
	}
	return false
}
