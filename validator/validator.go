package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/fossbarrow/global-ssn-validator/personnummer"
)

var v *validator.Validate

func init() {
	v = validator.New()

	// ssn_se: Swedish personal identity number, coordination numbers
	// included. Non-string fields fail the tag.
	_ = v.RegisterValidation("ssn_se", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return personnummer.Valid(fl.Field().String())
	})
}

func Instance() *validator.Validate {
	return v
}

func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string)
			for _, e := range errs {
				out[e.Field()] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}
