package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// FilterByIDs devuelve los productos existentes entre los IDs dados.
	// IDs repetidos o inexistentes simplemente no aparecen en el resultado.
	FilterByIDs(ids []string) ([]*entity.Product, error)
	// ListByOrder devuelve los productos asociados a una orden.
	ListByOrder(orderID string) ([]*entity.Product, error)
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Count(filter ProductFilter) (int, error)
}
