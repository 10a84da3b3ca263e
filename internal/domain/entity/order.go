package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una orden de compra de un cliente.
// TotalAmount se calcula una sola vez al crear la orden como la suma de los
// precios de los productos seleccionados; cambios de precio posteriores no
// la recalculan.
type Order struct {
	ID          string
	CustomerID  string
	OrderDate   time.Time
	TotalAmount decimal.Decimal
}
