package usecase

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ReceiptGenerator puerto para la representación PDF de una orden.
type ReceiptGenerator interface {
	GenerateOrderReceipt(
		ctx context.Context,
		order *entity.Order,
		customer *entity.Customer,
		products []*entity.Product,
	) ([]byte, error)
}

// ReceiptUseCase arma los datos de una orden y delega el PDF al generador.
type ReceiptUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, customers: customers, products: products, generator: generator}
}

// Generate devuelve el PDF del recibo de la orden.
func (uc *ReceiptUseCase) Generate(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customers.GetByID(order.CustomerID)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateOrderReceipt(ctx, order, customer, products)
}
