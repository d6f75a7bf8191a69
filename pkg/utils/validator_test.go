package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type allowSet map[string]bool

func (a allowSet) Allowed(id string) bool { return a[id] }

type priced struct {
	PriceID string `validate:"required,price_id"`
}

func TestValidatorPriceID(t *testing.T) {
	v := NewValidator(allowSet{"price_ok": true})

	assert.NoError(t, v.Struct(priced{PriceID: "price_ok"}))

	err := v.Struct(priced{})
	assert.Error(t, err)
	assert.Equal(t, "required", FailedTag(err, "PriceID"))

	err = v.Struct(priced{PriceID: "price_nope"})
	assert.Error(t, err)
	assert.Equal(t, "price_id", FailedTag(err, "PriceID"))
	assert.Equal(t, "", FailedTag(err, "Other"))
}

func TestFailedTagIgnoresOtherErrors(t *testing.T) {
	assert.Equal(t, "", FailedTag(assert.AnError, "PriceID"))
	assert.Equal(t, "", FailedTag(nil, "PriceID"))
}
