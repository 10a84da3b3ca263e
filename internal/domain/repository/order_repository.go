package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	// Create persiste la orden y sus filas en order_products.
	// Debe ejecutarse dentro de una transacción (ver usecase.TxRunner) para
	// que orden y asociaciones sean atómicas.
	Create(order *entity.Order, productIDs []string) error
	GetByID(id string) (*entity.Order, error)
	List(filter OrderFilter, limit, offset int) ([]*entity.Order, error)
	Count(filter OrderFilter) (int, error)
}
