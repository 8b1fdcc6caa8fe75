package handler

import (
	"reflect"

	"github.com/SergeyBogomolovv/store-admin-service/internal/recovery"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator returns a validator that understands decimal money fields
// and the recovery email rule.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})
	v.RegisterValidation("recovery_email", func(fl validator.FieldLevel) bool {
		return recovery.ValidEmail(fl.Field().String())
	})

	return v
}

func decimalValue(field reflect.Value) any {
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		return d.InexactFloat64()
	case decimal.NullDecimal:
		if !d.Valid {
			return nil
		}
		return d.Decimal.InexactFloat64()
	}
	return nil
}
