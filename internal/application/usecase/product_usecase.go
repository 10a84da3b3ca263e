package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/domain/validate"
)

// ProductUseCase casos de uso para productos. Los rechazos de validación son
// fallos duros: errores de dominio que la capa GraphQL expone en errors.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Se valida el precio antes que el stock; stock
// ausente queda en 0.
func (uc *ProductUseCase) Create(in dto.CreateProductInput) (*entity.Product, error) {
	if !validate.Price(in.Price) {
		return nil, domain.ErrPriceNotPositive
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if !validate.Stock(stock) {
		return nil, domain.ErrNegativeStock
	}
	product := &entity.Product{
		ID:    uuid.New().String(),
		Name:  in.Name,
		Price: in.Price,
		Stock: stock,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	return uc.repo.GetByID(id)
}

// ListByOrder devuelve los productos de una orden.
func (uc *ProductUseCase) ListByOrder(orderID string) ([]*entity.Product, error) {
	return uc.repo.ListByOrder(orderID)
}

// List lista productos con filtro opcional. limit <= 0 devuelve todos.
func (uc *ProductUseCase) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	return uc.repo.List(filter, limit, offset)
}

// Count cuenta productos que cumplen el filtro.
func (uc *ProductUseCase) Count(filter repository.ProductFilter) (int, error) {
	return uc.repo.Count(filter)
}
