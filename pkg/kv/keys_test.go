package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "users-42", UserKey("42"))
	assert.Equal(t, "package-42", PackageKey("42"))
	assert.Equal(t, "extra-42", ExtraKey("42"))
	assert.Equal(t, "coins-42", CoinsKey("42"))
	assert.Equal(t, "coupon-SAVE10", CouponKey("SAVE10"))
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{``, false},
		{`null`, false},
		{`false`, false},
		{`""`, false},
		{`0`, false},
		{`not json`, false},
		{`"17"`, true},
		{`17`, true},
		{`true`, true},
		{`{}`, true},
		{`{"coins":1}`, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truthy([]byte(tt.value)), tt.value)
	}
}
