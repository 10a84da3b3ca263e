package dto

import "time"

// CreateOrderInput entrada de la mutación createOrder.
// OrderDate nil usa la hora de creación.
type CreateOrderInput struct {
	CustomerID string
	ProductIDs []string
	OrderDate  *time.Time
}
