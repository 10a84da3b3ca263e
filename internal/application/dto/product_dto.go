package dto

import "github.com/shopspring/decimal"

// CreateProductInput entrada de la mutación createProduct.
// Stock nil aplica el valor por defecto 0.
type CreateProductInput struct {
	Name  string
	Price decimal.Decimal
	Stock *int
}
