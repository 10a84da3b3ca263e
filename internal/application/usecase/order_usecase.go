package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/domain/validate"
)

// OrderUseCase casos de uso para órdenes. Validaciones y escritura corren
// dentro de una misma transacción: ningún rechazo deja rastro en la base.
type OrderUseCase struct {
	orders repository.OrderRepository
	tx     TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, tx TxRunner) *OrderUseCase {
	return &OrderUseCase{orders: orders, tx: tx}
}

// Create crea una orden:
//
//  1. product_ids no puede estar vacío.
//  2. El cliente debe existir.
//  3. Todos los product_ids (distintos) deben resolverse a productos.
//  4. TotalAmount = suma decimal de los precios resueltos.
//  5. Orden y filas de order_products se insertan atómicamente.
//
// OrderDate ausente toma la hora actual.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderInput) (*entity.Order, error) {
	if len(in.ProductIDs) == 0 {
		return nil, domain.ErrNoProductsChosen
	}
	var created *entity.Order
	err := uc.tx.Run(ctx, func(
		customers repository.CustomerRepository,
		products repository.ProductRepository,
		orders repository.OrderRepository,
	) error {
		customer, err := customers.GetByID(in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrInvalidCustomerID
		}
		found, err := products.FilterByIDs(in.ProductIDs)
		if err != nil {
			return err
		}
		if !validate.AllResolved(in.ProductIDs, found) {
			return domain.ErrInvalidProductID
		}
		orderDate := time.Now()
		if in.OrderDate != nil {
			orderDate = *in.OrderDate
		}
		order := &entity.Order{
			ID:          uuid.New().String(),
			CustomerID:  customer.ID,
			OrderDate:   orderDate,
			TotalAmount: ComputeTotal(found),
		}
		ids := make([]string, 0, len(found))
		for _, p := range found {
			ids = append(ids, p.ID)
		}
		if err := orders.Create(order, ids); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID obtiene una orden por ID. Devuelve nil si no existe.
func (uc *OrderUseCase) GetByID(id string) (*entity.Order, error) {
	return uc.orders.GetByID(id)
}

// List lista órdenes con filtro opcional. limit <= 0 devuelve todas.
func (uc *OrderUseCase) List(filter repository.OrderFilter, limit, offset int) ([]*entity.Order, error) {
	return uc.orders.List(filter, limit, offset)
}

// Count cuenta órdenes que cumplen el filtro.
func (uc *OrderUseCase) Count(filter repository.OrderFilter) (int, error) {
	return uc.orders.Count(filter)
}
