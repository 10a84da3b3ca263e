package dto

import "github.com/jhoicas/crm-api/internal/domain/entity"

// CreateCustomerInput entrada de la mutación createCustomer (y de cada
// elemento de bulkCreateCustomers).
type CreateCustomerInput struct {
	Name  string
	Email string
	Phone string // opcional, vacío = ausente
}

// CustomerPayload respuesta de createCustomer. Un rechazo de validación es
// un "fallo suave": Customer nil y Message con el motivo; nunca un error Go.
type CustomerPayload struct {
	Customer *entity.Customer
	Message  string
}

// BulkCustomersPayload respuesta de bulkCreateCustomers: clientes creados en
// orden de procesamiento más los mensajes de error en orden de aparición.
type BulkCustomersPayload struct {
	Customers []*entity.Customer
	Errors    []string
}
