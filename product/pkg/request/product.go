package request

import (
	"github.com/shopspring/decimal"
)

// Product is the body of both create and update calls; the identity is
// always server-assigned, never part of the request.
type Product struct {
	Name        string          `validate:"required" json:"name"`
	Description string          `validate:"required" json:"description"`
	Category    string          `validate:"required" json:"category"`
	Price       decimal.Decimal `validate:"required" json:"price"`
}
