package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// Price se maneja con decimal exacto (NUMERIC(10,2) en la base).
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int
}
