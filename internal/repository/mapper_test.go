package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumericFromDecimalRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{name: "given fractional price should survive round trip", price: "59.90"},
		{name: "given whole price should survive round trip", price: "1000"},
		{name: "given zero price should survive round trip", price: "0"},
		{name: "given high precision price should survive round trip", price: "19.999"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			expected := decimal.RequireFromString(test.price)

			numeric := NumericFromDecimal(expected)
			assert.True(t, numeric.Valid)

			actual := decimal.NewFromBigInt(numeric.Int, numeric.Exp)
			assert.True(t, expected.Equal(actual))
		})
	}
}

func TestProductResponseProjection(t *testing.T) {
	entity := Product{
		ID:          7,
		Name:        "Keyboard",
		Description: "Mechanical",
		Category:    "electronics",
		Price:       NumericFromDecimal(decimal.RequireFromString("59.90")),
	}

	actual := entity.Response()

	assert.Equal(t, int64(7), actual.ID)
	assert.Equal(t, "Keyboard", actual.Name)
	assert.Equal(t, "Mechanical", actual.Description)
	assert.Equal(t, "electronics", actual.Category)
	assert.True(t, decimal.RequireFromString("59.90").Equal(actual.Price))
}
