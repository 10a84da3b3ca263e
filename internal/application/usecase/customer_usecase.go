package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/domain/validate"
)

// Mensajes de fallo suave de createCustomer. Son contrato de la API.
const (
	MsgEmailExists     = "Email already exists"
	MsgInvalidPhone    = "Invalid phone number format"
	MsgCustomerCreated = "Customer created successfully"
)

// CustomerUseCase casos de uso para clientes.
//
// A diferencia de productos y órdenes, los rechazos de validación aquí no son
// errores: se devuelven como parte normal del payload (Message o Errors).
// Un error Go solo significa que la base de datos falló.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx}
}

// Create crea un cliente. Valida unicidad de email primero y luego formato de
// teléfono; en ambos rechazos no se escribe nada en la base.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerInput) (*dto.CustomerPayload, error) {
	exists, err := uc.repo.ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return &dto.CustomerPayload{Message: MsgEmailExists}, nil
	}
	if !validate.Phone(in.Phone) {
		return &dto.CustomerPayload{Message: MsgInvalidPhone}, nil
	}
	customer := newCustomer(in)
	if err := uc.repo.Create(customer); err != nil {
		// Incluye la violación del UNIQUE de email si otro request ganó la
		// carrera entre ExistsByEmail y el INSERT: se propaga como fallo duro.
		return nil, err
	}
	return &dto.CustomerPayload{Customer: customer, Message: MsgCustomerCreated}, nil
}

// BulkCreate crea clientes en lote dentro de una sola transacción.
//
// Cada entrada se valida de forma independiente contra el estado visible en
// ese momento de la transacción, así que un email repetido dentro del mismo
// lote choca con el INSERT anterior del propio lote. Una entrada rechazada
// agrega su mensaje a Errors y no aborta el resto; un error inesperado de la
// base sí revierte todo lo creado.
func (uc *CustomerUseCase) BulkCreate(ctx context.Context, inputs []dto.CreateCustomerInput) (*dto.BulkCustomersPayload, error) {
	payload := &dto.BulkCustomersPayload{}
	err := uc.tx.Run(ctx, func(
		customers repository.CustomerRepository,
		_ repository.ProductRepository,
		_ repository.OrderRepository,
	) error {
		for _, in := range inputs {
			exists, err := customers.ExistsByEmail(in.Email)
			if err != nil {
				return err
			}
			if exists {
				payload.Errors = append(payload.Errors, fmt.Sprintf("Email already exists: %s", in.Email))
				continue
			}
			if !validate.Phone(in.Phone) {
				payload.Errors = append(payload.Errors, fmt.Sprintf("Invalid phone format for email: %s", in.Email))
				continue
			}
			customer := newCustomer(in)
			if err := customers.Create(customer); err != nil {
				return err
			}
			payload.Customers = append(payload.Customers, customer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// GetByID obtiene un cliente por ID. Devuelve nil si no existe.
func (uc *CustomerUseCase) GetByID(id string) (*entity.Customer, error) {
	return uc.repo.GetByID(id)
}

// List lista clientes con filtro opcional. limit <= 0 devuelve todos.
func (uc *CustomerUseCase) List(filter repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	return uc.repo.List(filter, limit, offset)
}

// Count cuenta clientes que cumplen el filtro.
func (uc *CustomerUseCase) Count(filter repository.CustomerFilter) (int, error) {
	return uc.repo.Count(filter)
}

func newCustomer(in dto.CreateCustomerInput) *entity.Customer {
	now := time.Now()
	return &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
