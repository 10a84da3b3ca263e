package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Filtros de listado. Campo nil = sin restricción; los campos se combinan
// con AND. Son el contrato de los queries allCustomers/allProducts/allOrders.

// CustomerFilter filtra clientes.
type CustomerFilter struct {
	NameContains  *string // coincidencia parcial, sin distinguir mayúsculas
	EmailContains *string
	CreatedAtGte  *time.Time
	CreatedAtLte  *time.Time
	PhonePattern  *string // prefijo exacto, ej. "+1"
}

// ProductFilter filtra productos.
type ProductFilter struct {
	NameContains *string
	PriceGte     *decimal.Decimal
	PriceLte     *decimal.Decimal
	StockGte     *int
	StockLte     *int
	LowStock     *bool // stock < 10
}

// OrderFilter filtra órdenes.
type OrderFilter struct {
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
	CustomerName   *string // coincidencia parcial sobre el nombre del cliente
	ProductID      *string // órdenes que incluyen este producto
}
