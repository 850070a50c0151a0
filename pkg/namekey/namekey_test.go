package namekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"JPMorgan Chase & Co.", "jpmorgan chase"},
		{"Goldman Sachs Group, Inc.", "goldman sachs"},
		{"  Stripe  ", "stripe"},
		{"ACME Holdings Ltd", "acme"},
		{"Co", "co"},
		{"", ""},
		{"Ben & Jerry's", "ben jerrys"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestCacheKeyStable(t *testing.T) {
	a := CacheKey("JPMorgan Chase & Co.")
	b := CacheKey("jpmorgan chase")
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}

func TestDomain(t *testing.T) {
	assert.Equal(t, "jpmorganchase.com", Domain("JPMorgan Chase & Co."))
	assert.Equal(t, "stripe.com", Domain("Stripe, Inc."))
}
