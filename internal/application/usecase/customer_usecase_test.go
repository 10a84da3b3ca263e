package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

func newCustomerUC(s *fakeStore) *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(&fakeCustomerRepo{s}, &fakeTxRunner{s})
}

// ──────────────────────────────────────────────────────────────────────────────
// createCustomer: los rechazos de validación son fallos suaves — payload con
// Customer nil y Message, sin error Go y sin escrituras en la base.
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_Exitoso(t *testing.T) {
	s := newFakeStore()
	uc := newCustomerUC(s)

	payload, err := uc.Create(dto.CreateCustomerInput{
		Name: "Alice", Email: "alice@example.com", Phone: "+1234567890",
	})
	require.NoError(t, err)
	require.NotNil(t, payload.Customer)
	assert.Equal(t, "Customer created successfully", payload.Message)
	assert.Equal(t, "Alice", payload.Customer.Name)
	assert.NotEmpty(t, payload.Customer.ID)
	assert.Len(t, s.customers, 1)
}

func TestCustomerCreate_SinTelefono(t *testing.T) {
	s := newFakeStore()
	uc := newCustomerUC(s)

	payload, err := uc.Create(dto.CreateCustomerInput{Name: "Carol", Email: "carol@example.com"})
	require.NoError(t, err)
	require.NotNil(t, payload.Customer)
	assert.Empty(t, payload.Customer.Phone)
}

func TestCustomerCreate_EmailDuplicado(t *testing.T) {
	s := newFakeStore()
	uc := newCustomerUC(s)

	_, err := uc.Create(dto.CreateCustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	payload, err := uc.Create(dto.CreateCustomerInput{Name: "Otra Alice", Email: "alice@example.com"})
	require.NoError(t, err, "email duplicado es fallo suave, no error")
	assert.Nil(t, payload.Customer)
	assert.Equal(t, "Email already exists", payload.Message)
	assert.Len(t, s.customers, 1, "la base no debe tocarse en el rechazo")
}

func TestCustomerCreate_TelefonoInvalido(t *testing.T) {
	s := newFakeStore()
	uc := newCustomerUC(s)

	payload, err := uc.Create(dto.CreateCustomerInput{
		Name: "Bob", Email: "bob@example.com", Phone: "12345",
	})
	require.NoError(t, err)
	assert.Nil(t, payload.Customer)
	assert.Equal(t, "Invalid phone number format", payload.Message)
	assert.Empty(t, s.customers)
}

func TestCustomerCreate_UnicidadAntesQueTelefono(t *testing.T) {
	s := newFakeStore()
	uc := newCustomerUC(s)

	_, err := uc.Create(dto.CreateCustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	// Email duplicado Y teléfono inválido: gana el chequeo de unicidad.
	payload, err := uc.Create(dto.CreateCustomerInput{
		Name: "Alice 2", Email: "alice@example.com", Phone: "bogus",
	})
	require.NoError(t, err)
	assert.Equal(t, "Email already exists", payload.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// bulkCreateCustomers: cada entrada se valida contra el estado visible en ese
// momento de la transacción; una entrada rechazada no aborta el lote, un error
// de la base revierte todo.
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkCreate_Exitoso(t *testing.T) {
	s := newFakeStore()
	uc := newCustomerUC(s)

	payload, err := uc.BulkCreate(context.Background(), []dto.CreateCustomerInput{
		{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
	})
	require.NoError(t, err)
	assert.Len(t, payload.Customers, 2)
	assert.Empty(t, payload.Errors)
	assert.Equal(t, "Alice", payload.Customers[0].Name, "orden de procesamiento = orden de entrada")
	assert.Equal(t, "Bob", payload.Customers[1].Name)
}

func TestBulkCreate_DuplicadoDentroDelLote(t *testing.T) {
	s := newFakeStore()
	uc := newCustomerUC(s)

	payload, err := uc.BulkCreate(context.Background(), []dto.CreateCustomerInput{
		{Name: "Primera", Email: "a@x.com"},
		{Name: "Segunda", Email: "a@x.com"},
	})
	require.NoError(t, err)
	require.Len(t, payload.Customers, 1, "solo la primera entrada debe crearse")
	assert.Equal(t, "Primera", payload.Customers[0].Name)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "Email already exists: a@x.com", payload.Errors[0])
	assert.Len(t, s.customers, 1)
}

func TestBulkCreate_TelefonoInvalidoNoAbortaElLote(t *testing.T) {
	s := newFakeStore()
	uc := newCustomerUC(s)

	payload, err := uc.BulkCreate(context.Background(), []dto.CreateCustomerInput{
		{Name: "Alice", Email: "alice@example.com", Phone: "no-es-telefono"},
		{Name: "Bob", Email: "bob@example.com"},
	})
	require.NoError(t, err)
	require.Len(t, payload.Customers, 1)
	assert.Equal(t, "Bob", payload.Customers[0].Name)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "Invalid phone format for email: alice@example.com", payload.Errors[0])
}

func TestBulkCreate_DuplicadoContraLaBase(t *testing.T) {
	s := newFakeStore()
	uc := newCustomerUC(s)

	_, err := uc.Create(dto.CreateCustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	payload, err := uc.BulkCreate(context.Background(), []dto.CreateCustomerInput{
		{Name: "Alice bis", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	})
	require.NoError(t, err)
	assert.Len(t, payload.Customers, 1)
	assert.Equal(t, []string{"Email already exists: alice@example.com"}, payload.Errors)
}

func TestBulkCreate_ErroresEnOrdenDeAparicion(t *testing.T) {
	s := newFakeStore()
	uc := newCustomerUC(s)

	payload, err := uc.BulkCreate(context.Background(), []dto.CreateCustomerInput{
		{Name: "A", Email: "a@x.com", Phone: "bogus"},
		{Name: "B", Email: "b@x.com"},
		{Name: "C", Email: "b@x.com"},
	})
	require.NoError(t, err)
	require.Len(t, payload.Errors, 2)
	assert.Equal(t, "Invalid phone format for email: a@x.com", payload.Errors[0])
	assert.Equal(t, "Email already exists: b@x.com", payload.Errors[1])
}

func TestBulkCreate_ErrorDeBaseRevierteTodo(t *testing.T) {
	s := newFakeStore()
	s.failCustomerCreateAt = 2 // el segundo INSERT falla
	uc := newCustomerUC(s)

	payload, err := uc.BulkCreate(context.Background(), []dto.CreateCustomerInput{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	})
	require.Error(t, err, "un error de la base es fallo duro")
	assert.Nil(t, payload)
	assert.Empty(t, s.customers, "la transacción debe revertir el primer insert")
}
