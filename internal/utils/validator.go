package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxQuantity bounds balances and resource overrides.
	MaxQuantity = 999999999999999

	// MaxCodeLength is where coupon codes are cut off.
	MaxCodeLength = 200

	TagQuantity   = "quantity"
	TagCouponCode = "coupon_code"
)

var couponCodePattern = regexp.MustCompile(`(?i)^[a-z0-9]+$`)

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagQuantity, func(fl validator.FieldLevel) bool {
		n := fl.Field().Float()
		return n >= 0 && n <= MaxQuantity
	})
	_ = v.RegisterValidation(TagCouponCode, func(fl validator.FieldLevel) bool {
		return couponCodePattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidQuantity reports whether n lies in [0, MaxQuantity].
func ValidQuantity(v *validator.Validate, n float64) bool {
	return v.Var(n, TagQuantity) == nil
}

// ValidCouponCode reports whether code is a non-empty ASCII alphanumeric string.
func ValidCouponCode(v *validator.Validate, code string) bool {
	return v.Var(code, TagCouponCode) == nil
}

// KnownPackage reports whether name is an entry of the configured catalog.
func KnownPackage(settings Settings, name string) bool {
	_, ok := settings.LookupPackage(name)
	return ok
}
