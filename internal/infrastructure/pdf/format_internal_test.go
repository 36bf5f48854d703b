package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "$0.00",
		"999.5":      "$999.50",
		"1250.5":     "$1,250.50",
		"1000000":    "$1,000,000.00",
		"-30":        "-$30.00",
		"123456.789": "$123,456.79",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}
