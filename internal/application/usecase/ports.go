package usecase

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma
// transacción. El commit ocurre solo si fn devuelve nil; cualquier error
// hace rollback de todo lo escrito dentro del callback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		products repository.ProductRepository,
		orders repository.OrderRepository,
	) error) error
}
