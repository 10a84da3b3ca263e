// seed puebla la base con el dataset de demostración: tres clientes, tres
// productos y dos órdenes. Pasa por los casos de uso, así que respeta las
// mismas validaciones que la API; correrlo dos veces reporta los emails
// repetidos en lugar de duplicar clientes.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	customerUC := usecase.NewCustomerUseCase(postgres.NewCustomerRepository(pool), txRunner)
	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool))
	orderUC := usecase.NewOrderUseCase(postgres.NewOrderRepository(pool), txRunner)

	customers, err := customerUC.BulkCreate(ctx, []dto.CreateCustomerInput{
		{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
		{Name: "Carol", Email: "carol@example.com"},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear clientes")
	}
	for _, msg := range customers.Errors {
		log.Warn().Str("error", msg).Msg("cliente omitido")
	}

	products := []dto.CreateProductInput{
		{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: intPtr(10)},
		{Name: "Phone", Price: decimal.RequireFromString("499.99"), Stock: intPtr(20)},
		{Name: "Headset", Price: decimal.RequireFromString("79.99"), Stock: intPtr(50)},
	}
	productIDs := make(map[string]string, len(products))
	for _, in := range products {
		p, err := productUC.Create(in)
		if err != nil {
			log.Fatal().Err(err).Str("product", in.Name).Msg("crear producto")
		}
		productIDs[p.Name] = p.ID
	}

	if len(customers.Customers) >= 2 {
		alice, bob := customers.Customers[0], customers.Customers[1]
		orders := []dto.CreateOrderInput{
			{CustomerID: alice.ID, ProductIDs: []string{productIDs["Laptop"], productIDs["Headset"]}},
			{CustomerID: bob.ID, ProductIDs: []string{productIDs["Phone"]}},
		}
		for _, in := range orders {
			if _, err := orderUC.Create(ctx, in); err != nil {
				log.Fatal().Err(err).Msg("crear orden")
			}
		}
	}

	log.Info().
		Int("customers", len(customers.Customers)).
		Int("products", len(products)).
		Msg("base de datos poblada")
	os.Exit(0)
}

func intPtr(n int) *int { return &n }
