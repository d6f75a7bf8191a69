package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// PriceAllowList reports whether a price identifier may be sold.
type PriceAllowList interface {
	Allowed(priceID string) bool
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator(prices PriceAllowList) *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("price_id", func(fl validator.FieldLevel) bool {
		return prices.Allowed(fl.Field().String())
	})

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FailedTag returns the tag of the first failed rule on field, or "" when
// err does not carry a failure for that field.
func FailedTag(err error, field string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ""
	}
	for _, fe := range verrs {
		if fe.StructField() == field {
			return fe.Tag()
		}
	}
	return ""
}
