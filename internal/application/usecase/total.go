package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ComputeTotal suma los precios de los productos con aritmética decimal
// exacta (escala 2, sin deriva de punto flotante). Es una suma pura:
// determinista e independiente del orden de los productos.
func ComputeTotal(products []*entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}
