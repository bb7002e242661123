package request

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductRequestDecoding(t *testing.T) {
	body := `{"name":"Keyboard","description":"Mechanical","category":"electronics","price":59.90}`

	actual := Product{}
	err := json.Unmarshal([]byte(body), &actual)

	assert.NoError(t, err)
	assert.Equal(t, "Keyboard", actual.Name)
	assert.Equal(t, "Mechanical", actual.Description)
	assert.Equal(t, "electronics", actual.Category)
	assert.True(t, decimal.RequireFromString("59.90").Equal(actual.Price))
}

func TestProductRequestValidation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	tests := []struct {
		name      string
		request   Product
		expectErr bool
	}{
		{
			name: "given complete request should pass",
			request: Product{
				Name:        "Keyboard",
				Description: "Mechanical",
				Category:    "electronics",
				Price:       decimal.RequireFromString("59.90"),
			},
			expectErr: false,
		},
		{
			name: "given missing name should fail",
			request: Product{
				Description: "Mechanical",
				Category:    "electronics",
				Price:       decimal.RequireFromString("59.90"),
			},
			expectErr: true,
		},
		{
			name: "given missing category should fail",
			request: Product{
				Name:        "Keyboard",
				Description: "Mechanical",
				Price:       decimal.RequireFromString("59.90"),
			},
			expectErr: true,
		},
		{
			name:      "given empty request should fail",
			request:   Product{},
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validate.Struct(test.request)
			if test.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
