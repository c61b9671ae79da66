package kv

import "github.com/tidwall/gjson"

// Key prefixes of the shared namespace. Other services read the same keys, so the formats are fixed.
const (
	userPrefix    = "users-"
	packagePrefix = "package-"
	extraPrefix   = "extra-"
	coinsPrefix   = "coins-"
	couponPrefix  = "coupon-"
)

func UserKey(id string) string     { return userPrefix + id }
func PackageKey(id string) string  { return packagePrefix + id }
func ExtraKey(id string) string    { return extraPrefix + id }
func CoinsKey(id string) string    { return coinsPrefix + id }
func CouponKey(code string) string { return couponPrefix + code }

// Truthy reports whether a stored document counts as present: null, false, "" and 0 do not.
func Truthy(value []byte) bool {
	if len(value) == 0 || !gjson.ValidBytes(value) {
		return false
	}
	r := gjson.ParseBytes(value)
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	default:
		return true
	}
}
