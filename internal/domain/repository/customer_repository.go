package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// ExistsByEmail verifica si ya hay un cliente con ese email
	// (comparación exacta, sensible a mayúsculas).
	ExistsByEmail(email string) (bool, error)
	List(filter CustomerFilter, limit, offset int) ([]*entity.Customer, error)
	Count(filter CustomerFilter) (int, error)
}
